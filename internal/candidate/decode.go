package candidate

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DecodeInput converts loosely typed form data (config files, prompts) into Input.
// Numbers become their decimal text and lists are joined with commas, so
// `experience: 5` and `skills: [go, sql]` are accepted.
func DecodeInput(raw map[string]any) (Input, error) {
	var in Input
	if err := decode(raw, &in); err != nil {
		return Input{}, fmt.Errorf("decode candidate: %w", err)
	}

	return in, nil
}

// DecodeCriteriaInput is DecodeInput for criteria forms.
func DecodeCriteriaInput(raw map[string]any) (CriteriaInput, error) {
	var in CriteriaInput
	if err := decode(raw, &in); err != nil {
		return CriteriaInput{}, fmt.Errorf("decode criteria: %w", err)
	}

	return in, nil
}

func decode(raw map[string]any, target any) error {
	cfg := &mapstructure.DecoderConfig{
		DecodeHook:       listToString,
		WeaklyTypedInput: true,
		Result:           target,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}

func listToString(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() != reflect.Slice {
		return data, nil
	}

	value := reflect.ValueOf(data)
	items := make([]string, 0, value.Len())
	for i := range value.Len() {
		items = append(items, fmt.Sprintf("%v", value.Index(i).Interface()))
	}

	return JoinList(items), nil
}
