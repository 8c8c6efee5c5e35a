package validate

import (
	"errors"
	"testing"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-api/internal/codec"
	"solana-api/internal/errorx"
	"solana-api/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestFields_String(t *testing.T) {
	assert.NoError(t, Fields(String("message", ptr("hello")))())
	assert.NoError(t, Fields(String("message", ptr(" ")))(), "空白字符不 trim，视为已提供")

	assert.ErrorIs(t, Fields(String("message", nil))(), errorx.ErrMissingFields)
	assert.ErrorIs(t, Fields(String("message", ptr("")))(), errorx.ErrMissingFields)
}

func TestFields_AmountVsPresent(t *testing.T) {
	assert.NoError(t, Fields(Amount("amount", ptr(uint64(1))))())
	assert.ErrorIs(t, Fields(Amount("amount", ptr(uint64(0))))(), errorx.ErrMissingFields)
	assert.ErrorIs(t, Fields(Amount("amount", nil))(), errorx.ErrMissingFields)

	// decimals = 0 合法
	assert.NoError(t, Fields(Present("decimals", ptr(uint8(0))))())
	assert.ErrorIs(t, Fields(Present[uint8]("decimals", nil))(), errorx.ErrMissingFields)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	var calls []string
	step := func(name string, err error) Step {
		return func() error {
			calls = append(calls, name)
			return err
		}
	}

	boom := errors.New("boom")
	err := Run(step("a", nil), step("b", boom), step("c", nil))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestRun_MissingBeforeDecode(t *testing.T) {
	// 即使 pubkey 非法，缺字段优先报 MissingFields
	bad := "not-a-key"
	var p types.Pubkey
	err := Run(
		Fields(String("pubkey", &bad), String("message", nil)),
		Pubkey(&p, &bad),
	)
	assert.ErrorIs(t, err, errorx.ErrMissingFields)
}

func TestDecodeSteps(t *testing.T) {
	acc := sdktypes.NewAccount()
	pubStr := acc.PublicKey.ToBase58()
	secret := codec.EncodeKeypair(acc)
	sigStr := codec.EncodeSignature(acc.Sign([]byte("m")))

	var (
		p   types.Pubkey
		kp  sdktypes.Account
		sig []byte
	)
	require.NoError(t, Run(
		Fields(String("pubkey", &pubStr), String("secret", &secret), String("signature", &sigStr)),
		Pubkey(&p, &pubStr),
		Keypair(&kp, &secret),
		Signature(&sig, &sigStr),
	))
	assert.Equal(t, acc.PublicKey, p.ToCommon())
	assert.Equal(t, acc.PublicKey, kp.PublicKey)
	assert.Len(t, sig, codec.SignatureLength)

	assert.ErrorIs(t, Pubkey(&p, &secret)(), errorx.ErrInvalidPublicKey)
	assert.ErrorIs(t, Keypair(&kp, &pubStr)(), errorx.ErrInvalidSecretKey)
	notBase64 := "%%%"
	assert.ErrorIs(t, Signature(&sig, &notBase64)(), errorx.ErrInvalidBase64)
}
