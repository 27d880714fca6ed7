package cidr

import (
	"fmt"
	"strconv"
	"strings"
)

type IPv4 [5]int // not uint8 because we do math that would wrap

// HostIPv4 parses a bare dotted-quad address (no prefix length) and returns
// it as a /32, which is how NAT gateway addresses enter security group rules.
func HostIPv4(s string) (IPv4, error) {
	return ParseIPv4(s + "/32")
}

func MustParseIPv4(s string) IPv4 {
	ipv4, err := ParseIPv4(s)
	if err != nil {
		panic(err)
	}
	return ipv4
}

func ParseIPv4(s string) (ipv4 IPv4, err error) {
	err = parseIPv4(s, &ipv4)
	return
}

func (ipv4 IPv4) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%#v", ipv4.String())), nil
}

func (ipv4 IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d/%d", ipv4[0], ipv4[1], ipv4[2], ipv4[3], ipv4[4])
}

func (ipv4 *IPv4) UnmarshalJSON(b []byte) (err error) {
	return parseIPv4(strings.Trim(string(b), `"`), ipv4)
}

func parseIPv4(s string, ipv4 *IPv4) (err error) {
	fields := strings.FieldsFunc(
		s,
		func(r rune) bool { return r == '.' || r == '/' },
	)
	if len(fields) != len(ipv4) {
		return fmt.Errorf("malformed IPv4 %s", s)
	}
	for i := 0; i < len(ipv4); i++ {
		if ipv4[i], err = strconv.Atoi(fields[i]); err != nil {
			return
		}
		if ipv4[i] < 0 || i < 4 && ipv4[i] > 255 || i == 4 && ipv4[i] > 32 {
			return fmt.Errorf("malformed IPv4 %s", s)
		}
	}
	return
}
