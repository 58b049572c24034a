package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"alora/shared/constant"
	"alora/shared/dto"
	"alora/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, parsedCreated.Equal(createdAt))

	parsedModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, parsedModified.Equal(modifiedAt))
}

func TestMetadata_FromModel_ZeroTimes(t *testing.T) {
	metadata := &dto.Metadata{CreatedAt: "stale"}
	metadata.FromModel(model.Metadata{CreatedBy: "system"})

	assert.Equal(t, dto.Metadata{CreatedBy: "system"}, *metadata)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "sort column is never taken from the client",
			query:    "page=2&limit=20&sort_by=name;drop&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when nothing is given",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "nothing set without defaults",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page falls back to default",
			query:          "page=invalid&limit=-10",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/dashboard/?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal",
			filter:    dto.Filter{Field: "email", Value: "a@b.c", Operator: dto.FilterOperatorEq},
			wantWhere: "email = :email",
			wantArgs:  map[string]any{"email": "a@b.c"},
		},
		{
			name:      "greater or equal with table and arg name",
			filter:    dto.Filter{ArgName: "start", Field: "submission_date", Table: "contact_submissions", Value: start, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "contact_submissions.submission_date >= :start",
			wantArgs:  map[string]any{"start": start},
		},
		{
			name:      "strictly less",
			filter:    dto.Filter{ArgName: "end", Field: "submission_date", Value: start, Operator: dto.FilterOperatorLess},
			wantWhere: "submission_date < :end",
			wantArgs:  map[string]any{"end": start},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "level", Value: []string{"admin", "staff"}, Operator: dto.FilterOperatorIn},
			wantWhere: "level IN (:level_0, :level_1) ",
			wantArgs:  map[string]any{"level_0": "admin", "level_1": "staff"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "last_login", Operator: dto.FilterIsNull},
			wantWhere: "last_login IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{ArgName: "start", Field: "submission_date", Value: "s", Operator: dto.FilterOperatorGreaterEq},
			dto.Filter{ArgName: "end", Field: "submission_date", Value: "e", Operator: dto.FilterOperatorLess},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(submission_date >= :start AND submission_date < :end)", where)
	assert.Equal(t, map[string]any{"start": "s", "end": "e"}, args)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}

func TestFilterGroup_SkipsUnknownOperators(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "email", Value: "a@b.c", Operator: "regex"},
			dto.Filter{Field: "level", Value: "staff", Operator: dto.FilterOperatorNotEq},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(level != :level)", where)
	assert.Equal(t, map[string]any{"level": "staff"}, args)
}
