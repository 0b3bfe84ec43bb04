package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	PageIndex int
	PageSize  int
}

// GetPaginationParams extracts and validates pagination parameters from the
// request. Defaults and bounds live here, never in the query engine.
func GetPaginationParams(c *gin.Context) PaginationParams {
	pageIndex, _ := strconv.Atoi(c.DefaultQuery("pageIndex", strconv.Itoa(constants.DefaultPageIndex)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(constants.DefaultPageSize)))

	if pageIndex < 1 {
		pageIndex = constants.DefaultPageIndex
	}
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return PaginationParams{
		PageIndex: pageIndex,
		PageSize:  pageSize,
	}
}

// QueryUint64 parses an optional numeric query parameter. Absent values
// return zero; ok is false only when the value is present and malformed.
func QueryUint64(c *gin.Context, name string) (uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
