package json

import (
	"bytes"
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Number UseNumber解码时数字的类型
type Number = json.Number

type RawMessage = json.RawMessage

func Marshal(input interface{}) ([]byte, error) {
	return api.Marshal(input)
}

func MarshalToString(input interface{}) (string, error) {
	return api.MarshalToString(input)
}

func Unmarshal(input []byte, data interface{}) error {
	return api.Unmarshal(input, data)
}

func UnmarshalFromString(input string, data interface{}) error {
	return api.UnmarshalFromString(input, data)
}

// UnmarshalNumber 当data没有指定具体数据结构时，json默认会将uint64数字转化为浮点数，这可能
// 导致精度丢失，使用该方法可以防止该问题出现
func UnmarshalNumber(input []byte, data interface{}) error {
	return DecodeUseNumber(bytes.NewReader(input), data)
}

// DecodeUseNumber 同UnmarshalNumber,从reader读取
func DecodeUseNumber(reader io.Reader, data interface{}) error {
	d := api.NewDecoder(reader)
	d.UseNumber()
	return d.Decode(data)
}
