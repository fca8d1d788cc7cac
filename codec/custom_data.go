package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/cadbin/errs"
)

// Element custom data is stored as a CBOR byte vector. Encoding uses Core Deterministic
// Encoding so equal maps always produce identical bytes, whatever their insertion order.
var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

func (st *encodeState) customData(data map[string]any) []byte {
	if len(data) == 0 {
		return nil
	}

	raw, err := cborEnc.Marshal(data)
	if err != nil {
		st.fail(errs.New(errs.PhaseEncode, errs.ErrEncodeFailure).
			Path(st.at("custom_data")...).
			Cause(err).
			Detail("custom data is not CBOR-encodable").
			Build())

		return nil
	}

	return raw
}

func (st *decodeState) customData(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var out map[string]any
	if err := cborDec.Unmarshal(raw, &out); err != nil {
		st.fail(errs.New(errs.PhaseDecode, errs.ErrMalformedBuffer).
			Path(st.at("custom_data")...).
			Cause(err).
			Detail("custom data is not valid CBOR").
			Build())

		return nil
	}

	return out
}
