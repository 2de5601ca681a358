package types

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MAType tags the moving average variant used for the middle band of the bollinger bands.
type MAType string

const (
	MATypeSMA  MAType = "SMA"
	MATypeEMA  MAType = "EMA"
	MATypeWMA  MAType = "WMA"
	MATypeVWMA MAType = "VWMA"
	MATypeDEMA MAType = "DEMA"
	MATypeTEMA MAType = "TEMA"
	MATypeKAMA MAType = "KAMA"
)

var ErrInvalidMAType = errors.New("invalid moving average type")

var MATypes = []MAType{MATypeSMA, MATypeEMA, MATypeWMA, MATypeVWMA, MATypeDEMA, MATypeTEMA, MATypeKAMA}

func ParseMAType(s string) (t MAType, err error) {
	t = MAType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case MATypeSMA, MATypeEMA, MATypeWMA, MATypeVWMA, MATypeDEMA, MATypeTEMA, MATypeKAMA:
		return t, nil
	}
	return t, errors.Wrapf(ErrInvalidMAType, "%q", s)
}

// RequiresVolume reports whether the variant needs a volume series.
func (t MAType) RequiresVolume() bool {
	return t == MATypeVWMA
}

func (t MAType) String() string {
	return string(t)
}

func (t *MAType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := ParseMAType(s)
	if err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *MAType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	v, err := ParseMAType(s)
	if err != nil {
		return err
	}

	*t = v
	return nil
}
