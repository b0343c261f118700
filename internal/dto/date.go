package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"todo-go/internal/utils"
)

// DateLayout 日期字段的统一格式
const DateLayout = "2006-01-02"

// Date 仅日期字段，输入先清洗再解析，输出固定为YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate 从time.Time创建Date
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// Today 当前服务器日期，按天截断
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON 实现json.Unmarshaler接口
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(DateLayout, utils.Strip(s))
	if err != nil {
		return fmt.Errorf("无效的日期格式: %q", s)
	}

	d.Time = t
	return nil
}

// MarshalJSON 实现json.Marshaler接口
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// Before 日期级比较
func (d Date) Before(other Date) bool {
	return d.Time.Truncate(24 * time.Hour).Before(other.Time.Truncate(24 * time.Hour))
}
