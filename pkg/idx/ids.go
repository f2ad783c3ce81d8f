package idx

import (
	"fmt"
	"strconv"

	"rbac-admin/pkg/json"
)

// IDs id列表,json中既接受字符串也接受数字,序列化为字符串避免前端精度丢失
type IDs []uint64

func (ids IDs) MarshalJSON() ([]byte, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(id, 10)
	}
	return json.Marshal(out)
}

func (ids *IDs) UnmarshalJSON(data []byte) error {
	var raw []interface{}
	if err := json.UnmarshalNumber(data, &raw); err != nil {
		return err
	}
	out := make(IDs, 0, len(raw))
	for _, item := range raw {
		var s string
		switch value := item.(type) {
		case string:
			s = value
		case json.Number:
			s = value.String()
		default:
			return fmt.Errorf("invalid id %v", item)
		}
		id, err := ParseID(s)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", s, err)
		}
		out = append(out, id)
	}
	*ids = out
	return nil
}

// Unique 去重并保持顺序
func (ids IDs) Unique() IDs {
	seen := make(map[uint64]struct{}, len(ids))
	out := make(IDs, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
