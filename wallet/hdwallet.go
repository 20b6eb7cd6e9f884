package wallet

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// HDKey represents a hierarchical deterministic key
type HDKey struct {
	PrivateKey []byte
	PublicKey  []byte
	ChainCode  []byte
	Depth      uint8
	ChildNum   uint32
}

// secp256k1 curve order
var curveOrder, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// deriveEthereumKey derives an Ethereum private key from seed and path
func deriveEthereumKey(seed []byte, path accounts.DerivationPath) (*ecdsa.PrivateKey, error) {
	masterKey, err := newMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	childKey := masterKey
	for _, childNum := range path {
		childKey, err = deriveChild(childKey, childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child: %w", err)
		}
	}

	privateKey, err := crypto.ToECDSA(childKey.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to ECDSA key: %w", err)
	}

	return privateKey, nil
}

// newMasterKey creates a master key from seed per BIP-32
func newMasterKey(seed []byte) (*HDKey, error) {
	hash := hmacSHA512([]byte("Bitcoin seed"), seed)
	if len(hash) != 64 {
		return nil, fmt.Errorf("invalid hash length")
	}

	privateKey := hash[:32]
	chainCode := hash[32:]

	if !isValidPrivateKey(privateKey) {
		return nil, fmt.Errorf("invalid private key")
	}

	return &HDKey{
		PrivateKey: privateKey,
		PublicKey:  derivePublicKey(privateKey),
		ChainCode:  chainCode,
	}, nil
}

// deriveChild derives a child key from parent
func deriveChild(parent *HDKey, childNum uint32) (*HDKey, error) {
	var data []byte

	if isHardened(childNum) {
		data = append([]byte{0x00}, parent.PrivateKey...)
	} else {
		data = parent.PublicKey
	}

	childNumBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(childNumBytes, childNum)
	data = append(data, childNumBytes...)

	hash := hmacSHA512(parent.ChainCode, data)
	if len(hash) != 64 {
		return nil, fmt.Errorf("invalid hash length")
	}

	il := hash[:32]
	ir := hash[32:]

	parentPrivateKey := new(big.Int).SetBytes(parent.PrivateKey)
	ilInt := new(big.Int).SetBytes(il)

	newPrivateKeyInt := new(big.Int).Add(parentPrivateKey, ilInt)
	newPrivateKeyInt.Mod(newPrivateKeyInt, curveOrder)

	if newPrivateKeyInt.Sign() == 0 {
		return nil, fmt.Errorf("invalid private key")
	}

	newPrivateKey := newPrivateKeyInt.Bytes()
	if len(newPrivateKey) < 32 {
		// Pad with zeros
		padded := make([]byte, 32)
		copy(padded[32-len(newPrivateKey):], newPrivateKey)
		newPrivateKey = padded
	}

	return &HDKey{
		PrivateKey: newPrivateKey,
		PublicKey:  derivePublicKey(newPrivateKey),
		ChainCode:  ir,
		Depth:      parent.Depth + 1,
		ChildNum:   childNum,
	}, nil
}

// derivePublicKey derives the compressed public key from a private key
func derivePublicKey(privateKey []byte) []byte {
	curve := crypto.S256()
	x, y := curve.ScalarBaseMult(privateKey)
	if y.Bit(0) == 0 {
		return append([]byte{0x02}, x.Bytes()...)
	}
	return append([]byte{0x03}, x.Bytes()...)
}

func hmacSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func isValidPrivateKey(privateKey []byte) bool {
	if len(privateKey) != 32 {
		return false
	}

	keyInt := new(big.Int).SetBytes(privateKey)
	if keyInt.Sign() == 0 {
		return false
	}
	return keyInt.Cmp(curveOrder) < 0
}

func isHardened(childNum uint32) bool {
	return childNum >= 0x80000000
}
