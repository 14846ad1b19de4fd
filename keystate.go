package jsencrypt

//go:generate go run github.com/dmarkham/enumer -type KeyState -trimprefix KeyState -transform lower -output keystate.gen.go

// KeyState is the lifecycle state of the facade's managed key. A facade
// holds at most one key; setting or generating a key replaces it.
type KeyState int

const (
	// KeyStateAbsent means no key has been set or generated yet.
	KeyStateAbsent KeyState = iota
	// KeyStateGenerating means an asynchronous generation is in flight.
	KeyStateGenerating
	// KeyStateReady means a key is installed and usable.
	KeyStateReady
)
