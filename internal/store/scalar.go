package store

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Scalar is an amount the way it is stored: either an opaque
// ciphertext token or a raw number. Raw numbers appear in records
// written before encryption existed and in records written through
// the vault's plaintext fallback; both decodings must keep working
// forever.
type Scalar struct {
	Token  string
	Number decimal.Decimal
	Plain  bool // the stored value was a raw number
}

// Cipher wraps an encrypted token.
func Cipher(token string) Scalar {
	return Scalar{Token: token}
}

// PlainNumber wraps an unencrypted amount, as found in legacy records.
func PlainNumber(amount decimal.Decimal) Scalar {
	return Scalar{Number: amount, Plain: true}
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.Plain {
		return json.Marshal(s.Number)
	}
	return json.Marshal(s.Token)
}

// UnmarshalJSON accepts a string token or a JSON number. Anything else
// decodes as a plain zero; a record field is never allowed to fail the
// whole load.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		*s = Scalar{Token: token}
		return nil
	}

	var number decimal.Decimal
	if err := json.Unmarshal(data, &number); err == nil {
		*s = Scalar{Number: number, Plain: true}
		return nil
	}

	*s = Scalar{Number: decimal.Decimal{}, Plain: true}
	return nil
}

func (s Scalar) MarshalBSONValue() (byte, []byte, error) {
	if s.Plain {
		value, _ := s.Number.Float64()
		t, data, err := bson.MarshalValue(value)
		return byte(t), data, err
	}

	t, data, err := bson.MarshalValue(s.Token)
	return byte(t), data, err
}

// UnmarshalBSONValue mirrors UnmarshalJSON for documents coming from
// MongoDB: strings are tokens, any numeric type is a plain number,
// everything else is a plain zero.
func (s *Scalar) UnmarshalBSONValue(t byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(t), Value: data}

	switch raw.Type {
	case bson.TypeString:
		*s = Scalar{Token: raw.StringValue()}
	case bson.TypeDouble:
		*s = Scalar{Number: decimal.NewFromFloat(raw.Double()), Plain: true}
	case bson.TypeInt32:
		*s = Scalar{Number: decimal.NewFromInt(int64(raw.Int32())), Plain: true}
	case bson.TypeInt64:
		*s = Scalar{Number: decimal.NewFromInt(raw.Int64()), Plain: true}
	default:
		*s = Scalar{Number: decimal.Decimal{}, Plain: true}
	}

	return nil
}
