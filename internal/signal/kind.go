package signal

// Kind identifies which usage category a classified line belongs to.
type Kind uint8

const (
	NoMatch          Kind = iota // no match
	Declaration                  // declaration
	Emission                     // emission
	Connection                   // connection
	CompatConnection             // compat connection
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case Declaration:
		return "declaration"
	case Emission:
		return "emission"
	case Connection:
		return "connection"
	case CompatConnection:
		return "compat connection"
	default:
		return "unknown"
	}
}
