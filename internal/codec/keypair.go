package codec

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"

	"solana-api/internal/errorx"
)

// KeypairLength secret(32) + public(32)
const KeypairLength = ed25519.PrivateKeySize

// DecodeKeypair 解析 base58 编码的 64 字节 keypair。
// 后 32 字节必须等于由前 32 字节 seed 推导出的公钥。
func DecodeKeypair(s string) (sdktypes.Account, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return sdktypes.Account{}, errorx.ErrInvalidSecretKey.Wrap(err)
	}
	if len(raw) != KeypairLength {
		return sdktypes.Account{}, errorx.ErrInvalidSecretKey.Wrap(
			fmt.Errorf("invalid keypair length: got %d, want %d", len(raw), KeypairLength))
	}

	// AccountFromBytes 直接取后 32 字节作为公钥，不会校验与 seed 是否一致
	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return sdktypes.Account{}, errorx.ErrInvalidSecretKey.Wrap(
			errors.New("public half does not match seed"))
	}

	account, err := sdktypes.AccountFromBytes(raw)
	if err != nil {
		return sdktypes.Account{}, errorx.ErrInvalidSecretKey.Wrap(err)
	}
	return account, nil
}

// EncodeKeypair 输出 base58(secret || public)
func EncodeKeypair(account sdktypes.Account) string {
	return base58.Encode(account.PrivateKey)
}
