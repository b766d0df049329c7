package dto_test

import (
	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/model"
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "room_type",
				Value:    "Double",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.room_type = :room_type",
			wantArgs:  map[string]any{"room_type": "Double"},
		},
		{
			name: "strict less",
			filter: dto.Filter{
				ArgName:  "req_checkout",
				Field:    "checkin_date",
				Value:    "2024-03-10",
				Operator: dto.FilterOperatorLess,
			},
			wantWhere: "checkin_date < :req_checkout",
			wantArgs:  map[string]any{"req_checkout": "2024-03-10"},
		},
		{
			name: "strict greater",
			filter: dto.Filter{
				ArgName:  "req_checkin",
				Field:    "checkout_date",
				Value:    "2024-03-01",
				Operator: dto.FilterOperatorGreater,
			},
			wantWhere: "checkout_date > :req_checkin",
			wantArgs:  map[string]any{"req_checkin": "2024-03-01"},
		},
		{
			name: "greater or equal",
			filter: dto.Filter{
				Field:    "checkout_date",
				Value:    "2024-03-10",
				Operator: dto.FilterOperatorGreaterEq,
			},
			wantWhere: "checkout_date >= :checkout_date",
			wantArgs:  map[string]any{"checkout_date": "2024-03-10"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "active",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for k, v := range tt.wantArgs {
				if args[k] != v {
					t.Errorf("expected arg %s=%v, got %v", k, v, args[k])
				}
			}
		})
	}
}

func TestFilterGroup_NestedGroups(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "in_a", Field: "checkin_date", Value: "2024-03-01", Operator: dto.FilterOperatorLessEq},
					dto.Filter{ArgName: "in_b", Field: "checkout_date", Value: "2024-03-01", Operator: dto.FilterOperatorGreater},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	want := "(status = :status AND (checkin_date <= :in_a OR checkout_date > :in_b))"
	if where != want {
		t.Errorf("expected where %q, got %q", want, where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "checkin_date",
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "checkin_date",
				SortDir: "DESC",
			},
		},
		{
			name:           "defaults applied when requested",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "invalid values ignored",
			queryParams: map[string]string{
				"page":     "zero",
				"limit":    "-5",
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range tt.queryParams {
				values.Set(k, v)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			q := dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}

	if metadata.CreatedAt == "" || metadata.ModifiedAt == "" {
		t.Error("expected formatted timestamps, got empty strings")
	}
}
