package models

import "time"

// Report type values submitted by clients. Stored for audit only; the removal
// classifier looks at raw counts, never at the type or reason.
const (
	ReportTypeSpam          = 1
	ReportTypeInappropriate = 2
	ReportTypeHarassment    = 3
	ReportTypeCopyright     = 4
	ReportTypeOther         = 5
)

// Report represents one address reporting one post. The composite unique
// index enforces one report per (post, reporter) pair.
type Report struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PostID     uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_reporter"`
	Reporter   string    `json:"reporter" gorm:"size:64;index;uniqueIndex:idx_post_reporter"`
	ReportType int       `json:"report_type"`
	Reason     string    `json:"reason" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReportRequest defines the request body for reporting a post
type CreateReportRequest struct {
	ReportType int    `json:"report_type" validate:"required,min=1,max=5"`
	Reason     string `json:"reason" validate:"required,min=1,max=500"`
}
