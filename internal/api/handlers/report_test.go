package handlers

import (
	"net/http"
	"testing"

	"foodbank-backend/internal/mocks"
	"foodbank-backend/internal/reports"
	"foodbank-backend/internal/service"
	"foodbank-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReportServiceInterface
	handler     *ReportHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReportServiceInterface(suite.ctrl)

	suite.handler = NewReportHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.GET("/organizations/:id/reports/:report", suite.handler.GetReport)
		v1.GET("/organizations/:id/reports/:report/export", suite.handler.ExportReport)
	}
}

// TearDownTest cleans up after each test
func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleTable() *reports.Table {
	b := reports.NewBuilder("Date", "Sorting")
	b.Add("2024-03-05", "Sorting", 40)
	return b.Build()
}

// TestGetOutgoingStats tests the JSON report endpoint
func (suite *ReportHandlerTestSuite) TestGetOutgoingStats() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		OutgoingStats(orgID, service.Window{Month: 3, Year: 2024}).
		Return(sampleTable(), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/reports/outgoing-stats?month=3&year=2024", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response reports.Table
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Date", response.LabelColumn)
	assert.Equal(suite.T(), 40.0, response.Totals["Sorting"])
}

// TestGetReportPassesUnit tests that weight reports receive the unit flag
func (suite *ReportHandlerTestSuite) TestGetReportPassesUnit() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		IncomingDonations(orgID, service.Window{Month: 0, Year: 2024}, reports.UnitPounds).
		Return(sampleTable(), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/reports/incoming-donations?month=all&year=2024&unit=Pounds+(lb)", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetReportMissingYear tests the mandatory year parameter
func (suite *ReportHandlerTestSuite) TestGetReportMissingYear() {
	orgID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/reports/outgoing-stats?month=3", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "year query parameter is required")
}

// TestGetReportInvalidMonth tests month validation
func (suite *ReportHandlerTestSuite) TestGetReportInvalidMonth() {
	orgID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/reports/outgoing-stats?month=13&year=2024", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetReportUnknownName tests the unknown report path
func (suite *ReportHandlerTestSuite) TestGetReportUnknownName() {
	orgID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/reports/nonsense?year=2024", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestExportReport tests the spreadsheet download
func (suite *ReportHandlerTestSuite) TestExportReport() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		VolunteerHours(orgID, service.Window{Month: 3, Year: 2024}).
		Return(sampleTable(), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/reports/volunteer-hours/export?month=3&year=2024", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), reports.ContentTypeXLSX, recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "volunteer-hours-2024-3.xlsx")

	// The body is a readable workbook
	file, err := excelize.OpenReader(recorder.Body)
	assert.NoError(suite.T(), err)
	if err == nil {
		defer file.Close()
		sheets := file.GetSheetList()
		assert.NotEmpty(suite.T(), sheets)
	}
}

// TestReportHandlerTestSuite runs the test suite
func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
