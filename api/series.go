package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outbreaklab/casecount-api/pipeline"
	"github.com/outbreaklab/casecount-api/schema"
	"github.com/outbreaklab/casecount-api/store"
)

const (
	seriesViewWorld     = "world"
	seriesViewCountries = "countries"
	seriesViewStates    = "states"

	defaultTopN = 10
)

type seriesQueryParams struct {
	N            int    `form:"n"`
	IncludeChina bool   `form:"include_china"`
	Country      string `form:"country"`
	PerCapita    bool   `form:"per_capita"`
}

// getSeries serves long-format rows for one of the chart views, straight
// from the pipeline's selectors over the stored table.
func (s *Server) getSeries(c *gin.Context) {
	var params seriesQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.N < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if params.N == 0 {
		params.N = defaultTopN
	}
	if params.Country == "" {
		params.Country = schema.LocationUSA
	}

	count := schema.CountTotal
	if params.PerCapita {
		count = schema.CountPerCapita
	}

	records, err := s.mongoStore.ListCases()
	if err != nil {
		status := http.StatusInternalServerError
		switch err {
		case store.ErrCaseDataFetch:
			abortWithEncoding(c, status, errorCaseDataFetch, err)
		case store.ErrCaseDecode:
			abortWithEncoding(c, status, errorCaseDataDecode, err)
		default:
			abortWithEncoding(c, status, errorInternalServer, err)
		}
		return
	}

	switch c.Param("view") {
	case seriesViewWorld:
		c.JSON(http.StatusOK, gin.H{"series": pipeline.WorldView(records)})
	case seriesViewCountries:
		n := params.N
		if !params.IncludeChina {
			// China keeps a slot by convention even when hidden
			n = params.N - 1
		}
		if n < 1 {
			// every slot went to China; the selector would read n < 1 as
			// "keep all countries"
			c.JSON(http.StatusOK, gin.H{"series": []schema.CaseRecord{}})
			return
		}
		series, err := pipeline.CountriesView(records, n, params.IncludeChina, count)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"series": series})
	case seriesViewStates:
		series, err := pipeline.StatesView(records, params.Country, params.N, count)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"series": series})
	default:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownSeriesView)
	}
}
