package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ItemRecord 页面子集合中的一条有序记录，对应 page_items 表的一行
type ItemRecord struct {
	Collection string
	SortOrder  int
	Data       json.RawMessage
	Children   []ItemRecord
}

// ItemContainer 拥有标量字段和有序子集合的对象（页面内容或可嵌套的条目）
type ItemContainer interface {
	// Fields 返回需要整体序列化的标量字段结构体指针
	Fields() any
	// Items 按集合与顺序展开所有子条目
	Items() ([]ItemRecord, error)
	// SetItems 从持久化记录还原子条目
	SetItems(records []ItemRecord) error
}

// Content 具体页面类型的内容
type Content interface {
	ItemContainer
	Kind() PageKind
}

// EncodeItems 将一个有序集合编码为记录，顺序即 sort_order
func EncodeItems[T any](collection string, items []T) ([]ItemRecord, error) {
	records := make([]ItemRecord, 0, len(items))
	for i := range items {
		rec := ItemRecord{Collection: collection, SortOrder: i}
		var payload any = &items[i]
		if c, ok := payload.(ItemContainer); ok {
			children, err := c.Items()
			if err != nil {
				return nil, err
			}
			rec.Children = children
			payload = c.Fields()
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("编码集合 %s 第 %d 项失败: %w", collection, i, err)
		}
		rec.Data = data
		records = append(records, rec)
	}
	return records, nil
}

// DecodeItems 从记录中取出指定集合的条目，保持记录顺序
func DecodeItems[T any](records []ItemRecord, collection string) ([]T, error) {
	items := make([]T, 0)
	for _, rec := range records {
		if rec.Collection != collection {
			continue
		}
		var item T
		var target any = &item
		if c, ok := target.(ItemContainer); ok {
			if err := json.Unmarshal(rec.Data, c.Fields()); err != nil {
				return nil, fmt.Errorf("解码集合 %s 失败: %w", collection, err)
			}
			if err := c.SetItems(rec.Children); err != nil {
				return nil, err
			}
		} else if err := json.Unmarshal(rec.Data, target); err != nil {
			return nil, fmt.Errorf("解码集合 %s 失败: %w", collection, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemEncoder 依次累积多个集合的编码结果，遇到第一个错误后停止
type ItemEncoder struct {
	records []ItemRecord
	err     error
}

// AppendItems 编码 items 并追加到 enc
func AppendItems[T any](enc *ItemEncoder, collection string, items []T) {
	if enc.err != nil {
		return
	}
	recs, err := EncodeItems(collection, items)
	if err != nil {
		enc.err = err
		return
	}
	enc.records = append(enc.records, recs...)
}

// Result 返回累积的记录
func (e *ItemEncoder) Result() ([]ItemRecord, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.records, nil
}

// ItemDecoder 依次解码多个集合
type ItemDecoder struct {
	records []ItemRecord
	err     error
}

func NewItemDecoder(records []ItemRecord) *ItemDecoder {
	return &ItemDecoder{records: records}
}

// DecodeInto 解码 collection 到 dst
func DecodeInto[T any](dec *ItemDecoder, collection string, dst *[]T) {
	if dec.err != nil {
		return
	}
	items, err := DecodeItems[T](dec.records, collection)
	if err != nil {
		dec.err = err
		return
	}
	*dst = items
}

func (d *ItemDecoder) Err() error {
	return d.err
}

// Date 只包含日期部分的时间，JSON 形式为 "2006-01-02"
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return fmt.Errorf("日期格式应为 YYYY-MM-DD: %w", err)
	}
	d.Time = t
	return nil
}

// SplitCommaList 拆分逗号分隔的标签或技能字符串
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
