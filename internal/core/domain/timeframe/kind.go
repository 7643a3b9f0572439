package timeframe

import "errors"

var ErrInvalidTimeframeKind = errors.New("invalid timeframe kind")

type Kind struct {
	v string
}

func (k Kind) String() string {
	return k.v
}

func ParseKind(value string) (Kind, error) {
	switch value {
	case "now":
		return KindNow, nil
	case "relative":
		return KindRelative, nil
	case "absolute":
		return KindAbsolute, nil
	default:
		return KindUnknown, ErrInvalidTimeframeKind
	}
}

var (
	KindUnknown  = Kind{}
	KindNow      = Kind{v: "now"}
	KindRelative = Kind{v: "relative"}
	KindAbsolute = Kind{v: "absolute"}
)
