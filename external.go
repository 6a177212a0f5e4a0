package tapejson

import (
	"fmt"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

var jsoniterConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// ToExternalValue decodes the subtree rooted at v into out using an
// external general-purpose JSON library, for callers that actually want a
// decoded value rather than offsets. Since every record's span is already
// valid minified JSON text (tapejson never rewrites the buffer), decoding
// a subtree is just handing its raw bytes to sonic.
func ToExternalValue(v View, out interface{}) error {
	raw, err := v.AppendJSON(nil)
	if err != nil {
		return fmt.Errorf("tapejson: ToExternalValue: %w", err)
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("tapejson: ToExternalValue: %w", err)
	}
	return nil
}

// UnescapeString resolves a Key or String View's raw quoted span (which
// Scan leaves untouched, escapes and all) into a Go string with \uXXXX and
// surrogate-pair escapes decoded. Deferring this to the reader/adapter
// layer, rather than doing it during the scan itself, is what lets Scan
// skip a field's string content entirely when the caller never asks for
// it. Grounded on the same benchmark comparison as ToExternalValue, here
// promoted from a build-only dependency to jsoniter's actual decoder.
func UnescapeString(v View) (string, error) {
	k := v.Kind()
	if k != String && k != Key {
		return "", fmt.Errorf("tapejson: UnescapeString called on %s", k)
	}
	var s string
	if err := jsoniterConfig.Unmarshal(v.RawBytes(), &s); err != nil {
		return "", fmt.Errorf("tapejson: UnescapeString: %w", err)
	}
	return s, nil
}
