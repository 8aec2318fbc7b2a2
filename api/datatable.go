package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outbreaklab/casecount-api/pipeline"
)

func (s *Server) getDataTable(c *gin.Context) {
	rows, err := s.historyStore.GetDataTable()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) getDataTableCSV(c *gin.Context) {
	rows, err := s.historyStore.GetDataTable()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	csvData, err := pipeline.DataTableCSV(rows)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="data_table.csv"`)
	c.Data(http.StatusOK, "text/csv", csvData)
}
