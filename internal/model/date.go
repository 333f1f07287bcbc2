package model

import (
	"bytes"
	"fmt"
	"time"
)

// DateLayout 日期输出格式（不带时区）
const DateLayout = "2006-01-02T15:04:05"

var dateInputLayouts = []string{
	time.RFC3339Nano,
	DateLayout,
	"2006-01-02",
}

// Date 视图模型中使用的日期类型
type Date struct {
	time.Time
}

// NewDate 由 time.Time 构造
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		d.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("日期必须是字符串: %s", data)
	}

	s := string(data[1 : len(data)-1])
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("无法解析日期: %q", s)
}
