package rotation

import (
	"net"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

// hostAddresses returns every usable host address in cidr, minus the
// network address, the broadcast address, and gateway — the exact
// candidate pool the rotation supervisor draws fresh IPs from.
func hostAddresses(cidr, gateway string) ([]string, int, error) {
	_, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, 0, errx.Wrap(ErrInvalidCIDR, err)
	}
	prefixLen, _ := ipnet.Mask.Size()

	network := ipnet.IP.Mask(ipnet.Mask)
	broadcast := lastAddr(ipnet)

	var hosts []string
	for addr := cloneIP(network); ipnet.Contains(addr); incIP(addr) {
		s := addr.String()
		if s == network.String() || s == broadcast.String() || s == gateway {
			continue
		}
		hosts = append(hosts, s)
	}
	return hosts, prefixLen, nil
}

func cloneIP(ip net.IP) net.IP {
	out := make(net.IP, len(ip))
	copy(out, ip)
	return out
}

func lastAddr(ipnet *net.IPNet) net.IP {
	ip := make(net.IP, len(ipnet.IP))
	for i := range ip {
		ip[i] = ipnet.IP[i] | ^ipnet.Mask[i]
	}
	return ip
}

func incIP(ip net.IP) {
	for i := len(ip) - 1; i >= 0; i-- {
		ip[i]++
		if ip[i] != 0 {
			return
		}
	}
}
