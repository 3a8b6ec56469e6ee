package replicator

import (
	"strings"

	"github.com/arthur-debert/photosort/pkg/errors"
)

// Kind identifies a replication strategy.
type Kind int

const (
	KindNone Kind = iota
	KindCopy
	KindHardlink
	KindSoftlink
	KindChain
)

var kindNames = map[Kind]string{
	KindNone:     "none",
	KindCopy:     "copy",
	KindHardlink: "hardlink",
	KindSoftlink: "softlink",
	KindChain:    "chain",
}

// DefaultKinds is the strategy order used when none is configured.
func DefaultKinds() []Kind {
	return []Kind{KindHardlink, KindSoftlink, KindCopy}
}

// strategyKinds are the kinds a user may name. A chain is built from them,
// never named.
var strategyKinds = []Kind{KindHardlink, KindSoftlink, KindCopy, KindNone}

// ParseKind maps a strategy name to its Kind.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, kind := range strategyKinds {
		if kindNames[kind] == normalized {
			return kind, nil
		}
	}
	return KindNone, errors.Newf(errors.ErrUnknownReplicator, "unknown replicator %q, expected one of: %s",
		name, strings.Join(KindNames(), ", ")).
		WithDetail("name", name)
}

// ParseKinds parses every name, failing on the first unknown one.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// KindNames returns the accepted strategy names.
func KindNames() []string {
	names := make([]string, len(strategyKinds))
	for i, kind := range strategyKinds {
		names[i] = kindNames[kind]
	}
	return names
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
