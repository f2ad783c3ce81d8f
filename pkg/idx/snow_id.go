package idx

import (
	"errors"
	"net"
	"strconv"

	"github.com/sony/sonyflake"
)

// defaultMachineID 无可用私网IPv4时使用
const defaultMachineID uint16 = 1

var sf = sonyflake.NewSonyflake(sonyflake.Settings{MachineID: machineID})

// NextID generate id
func NextID() (uint64, error) {
	return sf.NextID()
}

// ParseID 解析十进制字符串id,0视为非法
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func machineID() (uint16, error) {
	ip, err := lower16BitIPV4()
	if err != nil {
		return defaultMachineID, nil
	}
	return uint16(ip[2])<<8 + uint16(ip[3]), nil
}

func lower16BitIPV4() (net.IP, error) {
	as, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}

	for _, a := range as {
		inet, ok := a.(*net.IPNet)
		if !ok || inet.IP.IsLoopback() {
			continue
		}

		ip := inet.IP.To4()
		// Pass ipv6 address
		if ip == nil {
			continue
		}
		return ip, nil
	}
	return nil, errors.New("no private ip address")
}
