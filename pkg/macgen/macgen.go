// Package macgen produces MAC addresses that pass for real vendor-assigned
// NICs: a real OUI prefix plus cryptographically random host octets.
package macgen

import (
	"crypto/rand"
	"fmt"

	"github.com/blackridgelabs/rangewalker/internal/errx"
	"github.com/blackridgelabs/rangewalker/internal/macvendor"
)

// Address is a generated MAC paired with the vendor name its OUI claims.
type Address struct {
	MAC    string // "XX:XX:XX:XX:XX:XX", uppercase hex
	Vendor string
}

// Generate picks a vendor OUI uniformly at random from the compiled-in
// table and appends three cryptographically random octets. The
// locally-administered bit is never set: real OUI prefixes never set it
// and the host octets don't touch octet 0.
func Generate() (Address, error) {
	entry, err := randomVendor()
	if err != nil {
		return Address{}, err
	}

	var host [3]byte
	if _, err := rand.Read(host[:]); err != nil {
		return Address{}, errx.Wrap(ErrReadRandom, err)
	}

	mac := fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		entry.Prefix[0], entry.Prefix[1], entry.Prefix[2],
		host[0], host[1], host[2])

	return Address{MAC: mac, Vendor: entry.Vendor}, nil
}

func randomVendor() (macvendor.Entry, error) {
	idx, err := randomIndex(len(macvendor.Table))
	if err != nil {
		return macvendor.Entry{}, err
	}
	return macvendor.Table[idx], nil
}

func randomIndex(n int) (int, error) {
	var b [1]byte
	// Table has well under 256 entries; a single random byte modulo n keeps
	// this allocation-free. The table's exact size isn't a secret, so the
	// tiny modulo bias here doesn't matter.
	if _, err := rand.Read(b[:]); err != nil {
		return 0, errx.Wrap(ErrReadRandom, err)
	}
	return int(b[0]) % n, nil
}
