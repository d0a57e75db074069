package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Channel selects one sample plane of an RGB buffer.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// ParseChannel maps a channel name to its selector.
func ParseChannel(name string) (Channel, error) {
	switch name {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("unknown channel: %s", name)
	}
}

// ChannelExtract replaces all three planes with the selected channel's
// values, producing a grayscale-looking but still 3-channel buffer.
type ChannelExtract struct {
	channel Channel
}

func NewChannelExtract(c Channel) (*ChannelExtract, error) {
	if c < Red || c > Blue {
		return nil, fmt.Errorf("invalid channel selector: %d", int(c))
	}
	return &ChannelExtract{channel: c}, nil
}

func (t *ChannelExtract) Name() string {
	return "channel_" + t.channel.String()
}

func (t *ChannelExtract) Apply(src gocv.Mat) (gocv.Mat, error) {
	if err := validateSource(src); err != nil {
		return gocv.NewMat(), err
	}

	// Buffers are RGB ordered, so the plane index equals the selector.
	planes := gocv.Split(src)
	defer closePlanes(planes)

	plane := planes[int(t.channel)]
	dst := gocv.NewMat()
	gocv.Merge([]gocv.Mat{plane, plane, plane}, &dst)

	return dst, nil
}
