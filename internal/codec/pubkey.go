package codec

import (
	"solana-api/internal/errorx"
	"solana-api/internal/types"
)

// DecodePubkey base58 -> Pubkey，任何格式问题都归为 InvalidPublicKey
func DecodePubkey(s string) (types.Pubkey, error) {
	p, err := types.TryPubkeyFromBase58(s)
	if err != nil {
		return types.Pubkey{}, errorx.ErrInvalidPublicKey.Wrap(err)
	}
	return p, nil
}
