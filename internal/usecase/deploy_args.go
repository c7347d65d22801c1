package usecase

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/barista/internal/domain"
)

// CoerceConstructorArgs converts loosely typed procedure arguments into the
// Go types go-ethereum's ABI packer expects for each constructor input.
// Values that already have the right type pass through unchanged.
func CoerceConstructorArgs(inputs abi.Arguments, args []any) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("constructor expects %d arguments, got %d", len(inputs), len(args))
	}

	out := make([]any, len(args))
	for i, input := range inputs {
		v, err := coerceArg(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("constructor argument %s (%s): %w", name, input.Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

func coerceArg(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.AddressTy:
		switch a := v.(type) {
		case common.Address:
			return a, nil
		case string:
			if !common.IsHexAddress(a) {
				return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, a)
			}
			return common.HexToAddress(a), nil
		}
	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		if t.T == abi.UintTy && n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for unsigned type", n)
		}
		return sizedInt(t, n)
	case abi.BoolTy:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			switch strings.ToLower(b) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
	case abi.StringTy:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case abi.BytesTy:
		switch b := v.(type) {
		case []byte:
			return b, nil
		case string:
			return hexutil.Decode(b)
		}
	case abi.FixedBytesTy:
		var raw []byte
		switch b := v.(type) {
		case string:
			decoded, err := hexutil.Decode(b)
			if err != nil {
				return nil, err
			}
			raw = decoded
		default:
			if reflect.TypeOf(v) == t.GetType() {
				return v, nil
			}
		}
		if raw != nil {
			if len(raw) != t.Size {
				return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(raw))
			}
			arr := reflect.New(t.GetType()).Elem()
			reflect.Copy(arr, reflect.ValueOf(raw))
			return arr.Interface(), nil
		}
	default:
		// tuples, arrays: caller must supply exact Go types
		return v, nil
	}
	return nil, fmt.Errorf("cannot use %T value %v", v, v)
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case string:
		if z, ok := new(big.Int).SetString(n, 0); ok {
			return z, nil
		}
		return nil, fmt.Errorf("invalid integer %q", n)
	}
	return nil, fmt.Errorf("cannot use %T as integer", v)
}

// sizedInt returns n in the Go type abi.Pack requires for t
func sizedInt(t abi.Type, n *big.Int) (any, error) {
	if t.T == abi.UintTy {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size))
		if n.Cmp(limit) >= 0 {
			return nil, fmt.Errorf("value %s overflows uint%d", n, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("value %s overflows int%d", n, t.Size)
		}
	}

	switch {
	case t.T == abi.UintTy && t.Size == 8:
		return uint8(n.Uint64()), nil
	case t.T == abi.UintTy && t.Size == 16:
		return uint16(n.Uint64()), nil
	case t.T == abi.UintTy && t.Size == 32:
		return uint32(n.Uint64()), nil
	case t.T == abi.UintTy && t.Size == 64:
		return n.Uint64(), nil
	case t.T == abi.IntTy && t.Size == 8:
		return int8(n.Int64()), nil
	case t.T == abi.IntTy && t.Size == 16:
		return int16(n.Int64()), nil
	case t.T == abi.IntTy && t.Size == 32:
		return int32(n.Int64()), nil
	case t.T == abi.IntTy && t.Size == 64:
		return n.Int64(), nil
	}
	return n, nil
}
