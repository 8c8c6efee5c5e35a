package codec

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"solana-api/internal/errorx"
	"solana-api/internal/types"
)

const SignatureLength = ed25519.SignatureSize

// 标准 base64，带 padding，拒绝非规范的尾部比特
var sigEncoding = base64.StdEncoding.Strict()

var errLineBreak = errors.New("line break in base64 input")

// DecodeSignature base64 解码失败 -> InvalidBase64；长度不是 64 -> InvalidSignatureFormat
func DecodeSignature(s string) ([]byte, error) {
	// encoding/base64 即使 Strict 也会跳过 \r \n
	if strings.ContainsAny(s, "\r\n") {
		return nil, errorx.ErrInvalidBase64.Wrap(errLineBreak)
	}
	raw, err := sigEncoding.DecodeString(s)
	if err != nil {
		return nil, errorx.ErrInvalidBase64.Wrap(err)
	}
	if len(raw) != SignatureLength {
		return nil, errorx.ErrInvalidSignatureFormat.Wrap(
			fmt.Errorf("invalid signature length: got %d, want %d", len(raw), SignatureLength))
	}
	return raw, nil
}

func EncodeSignature(sig []byte) string {
	return sigEncoding.EncodeToString(sig)
}

// EncodeData 指令 payload 同样使用标准 base64
func EncodeData(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// VerifySignature 对原始消息字节做 ed25519 校验；格式合法但签名不匹配返回 false，不是错误
func VerifySignature(pubkey types.Pubkey, message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pubkey[:]), message, sig)
}
