package core

// Kind is the closed set of agent categories
// Reporting and colouring only, never read by physics
type Kind uint8

const (
	KindMedical Kind = iota
	KindEnvironmental
	KindManufacturing
	KindMonitoring
	KindSurgical
	KindCount
)

var kindNames = [KindCount]string{
	KindMedical:       "medical",
	KindEnvironmental: "environmental",
	KindManufacturing: "manufacturing",
	KindMonitoring:    "monitoring",
	KindSurgical:      "surgical",
}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the enumerated kinds
func (k Kind) Valid() bool {
	return k < KindCount
}

// KindFor returns the round-robin kind for creation index i
func KindFor(i int) Kind {
	return Kind(i % int(KindCount))
}

// ParseKind resolves a kind name, case sensitive
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
