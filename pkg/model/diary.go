package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: parsed}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())

		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}

		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (Date) GormDataType() string {
	return "date"
}

// DiaryEntry records a visit with a photo. The restaurant name is kept so
// the entry survives deletion of the restaurant it pointed at.
type DiaryEntry struct {
	ID             uint        `gorm:"primaryKey"                      json:"id"`
	RestaurantID   *uint       `gorm:"index"                           json:"restaurant_id"`
	Restaurant     *Restaurant `gorm:"constraint:OnDelete:SET NULL;"   json:"-"`
	RestaurantName string      `gorm:"not null"                        json:"restaurant_name"`
	PhotoURL       string      `gorm:"not null"                        json:"photo_url"`
	Comment        *string     `json:"comment"`
	VisitDate      Date        `gorm:"not null;index"                  json:"visit_date"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (DiaryEntry) TableName() string {
	return "food_diary"
}
