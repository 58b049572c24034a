package dto

import (
	"fmt"
	"net/http"
	"time"

	"alora/shared/constant"
	"alora/shared/failure"
	"alora/shared/timezone"
)

const (
	FileName  = "contacts.xlsx"
	SheetName = "Contacts"

	MessageInvalidDateRange = "start_date and end_date are required in YYYY-MM-DD format"
	MessageExportFailed     = "Failed to export contact submissions"
)

// Header is the first row of every export, in column order.
var Header = []any{"Name", "Email", "Message", "Submission Date"}

type ExportContactsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Range returns the half-open interval [start, end+1day) in the app timezone.
func (r ExportContactsRequest) Range() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, r.StartDate)
	if err != nil {
		return start, end, invalidRange(r.StartDate, err)
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, r.EndDate)
	if err != nil {
		return start, end, invalidRange(r.EndDate, err)
	}

	return start, end.AddDate(0, 0, 1), nil
}

func invalidRange(value string, cause error) error {
	return &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: MessageInvalidDateRange,
		Kind:    failure.KindInvalidDateRange,
		Details: fmt.Sprintf("%q", value),
		Detail:  cause.Error(),
	}
}

type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
	ArchiveURL  string
	Rows        int
}
