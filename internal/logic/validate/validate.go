package validate

import (
	"fmt"

	sdktypes "github.com/blocto/solana-go-sdk/types"

	"solana-api/internal/codec"
	"solana-api/internal/errorx"
	"solana-api/internal/types"
)

// Step 管道中的一个可失败步骤
type Step func() error

// Run 按顺序执行，第一个失败的 step 直接返回，后续不再执行
func Run(steps ...Step) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Field 一个字段的存在性约束
type Field struct {
	Name    string
	present func() bool
}

// String 未提供或空串都视为缺失，不做 trim
func String(name string, v *string) Field {
	return Field{Name: name, present: func() bool { return v != nil && *v != "" }}
}

// Amount 未提供或为 0 都视为缺失
func Amount(name string, v *uint64) Field {
	return Field{Name: name, present: func() bool { return v != nil && *v > 0 }}
}

// Present 只要求提供，零值合法（如 decimals=0）
func Present[T any](name string, v *T) Field {
	return Field{Name: name, present: func() bool { return v != nil }}
}

// Fields 按声明顺序检查，首个缺失字段即返回 MissingFields
func Fields(fields ...Field) Step {
	return func() error {
		for _, f := range fields {
			if !f.present() {
				return errorx.ErrMissingFields.Wrap(fmt.Errorf("field %q is missing", f.Name))
			}
		}
		return nil
	}
}

// 以下 decode step 只能放在 Fields 之后，src 此时保证非空

func Pubkey(dst *types.Pubkey, src *string) Step {
	return func() error {
		p, err := codec.DecodePubkey(*src)
		if err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

func Keypair(dst *sdktypes.Account, src *string) Step {
	return func() error {
		acc, err := codec.DecodeKeypair(*src)
		if err != nil {
			return err
		}
		*dst = acc
		return nil
	}
}

func Signature(dst *[]byte, src *string) Step {
	return func() error {
		sig, err := codec.DecodeSignature(*src)
		if err != nil {
			return err
		}
		*dst = sig
		return nil
	}
}
