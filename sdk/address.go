package sdk

// Address identifies a principal on the host ledger. The engine never verifies
// signatures; the host's authentication layer resolves the caller identity and
// the engine only compares addresses for equality.
type Address string

// ZeroAddress is the empty identity. No authenticated caller ever carries it.
const ZeroAddress Address = ""

// String returns the literal representation of the address.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the empty identity.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Mint identifies a receipt-unit type issued for a project.
type Mint string

// String returns the raw mint identifier for logs or host calls.
func (m Mint) String() string {
	return string(m)
}
