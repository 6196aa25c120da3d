// Package macvendor is the static dataset of real-vendor OUI prefixes used
// to make generated MAC addresses look like genuine NIC allocations.
package macvendor

// Entry is one IEEE-assigned OUI prefix and its display vendor name.
type Entry struct {
	Prefix [3]byte
	Vendor string
}

// Table lists real-vendor OUI prefixes. None of these set the
// locally-administered bit (bit 1 of the first octet), matching how real
// vendor allocations look on the wire.
var Table = []Entry{
	{[3]byte{0x00, 0x50, 0x56}, "VMware"},
	{[3]byte{0x00, 0x0C, 0x29}, "VMware"},
	{[3]byte{0x00, 0x1C, 0x42}, "Parallels"},
	{[3]byte{0x08, 0x00, 0x27}, "PCS Systemtechnik/Oracle VirtualBox"},
	{[3]byte{0x00, 0x15, 0x5D}, "Microsoft Hyper-V"},
	{[3]byte{0x00, 0x1A, 0xA0}, "Dell"},
	{[3]byte{0x14, 0x18, 0x77}, "Dell"},
	{[3]byte{0xD4, 0xBE, 0xD9}, "Dell"},
	{[3]byte{0xF8, 0xBC, 0x12}, "Dell"},
	{[3]byte{0x00, 0x1E, 0xC9}, "Dell"},
	{[3]byte{0x00, 0x25, 0xB3}, "Hewlett Packard"},
	{[3]byte{0x3C, 0xD9, 0x2B}, "Hewlett Packard Enterprise"},
	{[3]byte{0x9C, 0x8E, 0x99}, "Hewlett Packard"},
	{[3]byte{0xA0, 0x48, 0x1C}, "Hewlett Packard"},
	{[3]byte{0x00, 0x1B, 0x78}, "Hewlett Packard"},
	{[3]byte{0xB4, 0xB6, 0x86}, "Intel"},
	{[3]byte{0x00, 0x1B, 0x21}, "Intel"},
	{[3]byte{0x3C, 0xFD, 0xFE}, "Intel"},
	{[3]byte{0xA4, 0xBB, 0x6D}, "Intel"},
	{[3]byte{0x7C, 0x7A, 0x91}, "Intel"},
	{[3]byte{0x00, 0x1E, 0x64}, "Cisco"},
	{[3]byte{0x00, 0x1B, 0x54}, "Cisco"},
	{[3]byte{0x00, 0x26, 0x0A}, "Cisco"},
	{[3]byte{0x58, 0x97, 0xBD}, "Cisco"},
	{[3]byte{0xAC, 0xA0, 0x16}, "Cisco"},
	{[3]byte{0xF8, 0x66, 0xF2}, "Apple"},
	{[3]byte{0x3C, 0x07, 0x54}, "Apple"},
	{[3]byte{0xA4, 0x83, 0xE7}, "Apple"},
	{[3]byte{0x70, 0x56, 0x81}, "Apple"},
	{[3]byte{0x00, 0x1F, 0x5B}, "Apple"},
	{[3]byte{0x00, 0x16, 0xCB}, "Apple"},
	{[3]byte{0x28, 0xCF, 0xE9}, "Apple"},
	{[3]byte{0xDC, 0xA9, 0x04}, "Apple"},
	{[3]byte{0x00, 0x24, 0x36}, "Apple"},
	{[3]byte{0x3C, 0x15, 0xC2}, "Apple"},
	{[3]byte{0x00, 0x1D, 0x4F}, "Sony"},
	{[3]byte{0x04, 0xD3, 0xB0}, "Sony"},
	{[3]byte{0x00, 0x0E, 0x07}, "Huawei"},
	{[3]byte{0x00, 0x1E, 0x10}, "Huawei"},
	{[3]byte{0x00, 0x25, 0x9E}, "Huawei"},
	{[3]byte{0xD0, 0x17, 0xC2}, "Huawei"},
	{[3]byte{0x00, 0x17, 0x88}, "Philips"},
	{[3]byte{0x00, 0x09, 0x5B}, "Netgear"},
	{[3]byte{0x00, 0x14, 0x6C}, "Netgear"},
	{[3]byte{0x20, 0x4E, 0x7F}, "Netgear"},
	{[3]byte{0x00, 0x1F, 0x33}, "Netgear"},
	{[3]byte{0x00, 0x1D, 0x7E}, "TP-Link"},
	{[3]byte{0x14, 0xCC, 0x20}, "TP-Link"},
	{[3]byte{0xF4, 0xF2, 0x6D}, "TP-Link"},
	{[3]byte{0xB0, 0x48, 0x7A}, "D-Link"},
	{[3]byte{0x00, 0x1B, 0x11}, "D-Link"},
	{[3]byte{0x00, 0x0F, 0xB5}, "Netgear"},
	{[3]byte{0x00, 0x19, 0x5B}, "D-Link"},
	{[3]byte{0x00, 0x21, 0x91}, "D-Link"},
	{[3]byte{0x00, 0x13, 0x10}, "D-Link"},
	{[3]byte{0x00, 0x22, 0x6B}, "Cisco-Linksys"},
	{[3]byte{0x00, 0x0C, 0x41}, "Cisco-Linksys"},
	{[3]byte{0x00, 0x25, 0x9C}, "Cisco-Linksys"},
	{[3]byte{0xF4, 0x5E, 0xAB}, "Asus"},
	{[3]byte{0x1C, 0x87, 0x2C}, "Asus"},
	{[3]byte{0x2C, 0x56, 0xDC}, "Asus"},
	{[3]byte{0x00, 0x1F, 0xC6}, "Asus"},
	{[3]byte{0xE0, 0x3F, 0x49}, "Asus"},
	{[3]byte{0x00, 0x24, 0x8C}, "Asus"},
	{[3]byte{0x00, 0x1C, 0xBF}, "Lenovo"},
	{[3]byte{0x54, 0xEE, 0x75}, "Lenovo"},
	{[3]byte{0x00, 0x21, 0x86}, "Lenovo"},
	{[3]byte{0xA4, 0x4E, 0x31}, "Lenovo"},
	{[3]byte{0x00, 0x17, 0xA4}, "Toshiba"},
	{[3]byte{0x00, 0x1B, 0xAF}, "Toshiba"},
	{[3]byte{0x00, 0x1F, 0x3B}, "Toshiba"},
	{[3]byte{0x00, 0x13, 0x21}, "Samsung"},
	{[3]byte{0x00, 0x15, 0x99}, "Samsung"},
	{[3]byte{0x5C, 0x0A, 0x5B}, "Samsung"},
	{[3]byte{0xB8, 0x5A, 0x73}, "Samsung"},
	{[3]byte{0x00, 0x1B, 0x98}, "Acer"},
	{[3]byte{0x00, 0x1F, 0x2A}, "Acer"},
	{[3]byte{0x54, 0x04, 0xA6}, "ASRock"},
	{[3]byte{0x00, 0x50, 0x43}, "Master Soft"},
	{[3]byte{0x00, 0x1C, 0x23}, "Dell"},
	{[3]byte{0x00, 0x03, 0xFF}, "Microsoft"},
	{[3]byte{0x00, 0x0D, 0x3A}, "Microsoft"},
	{[3]byte{0x28, 0x18, 0x78}, "Microsoft"},
}
