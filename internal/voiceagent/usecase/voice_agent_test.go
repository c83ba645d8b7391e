package usecase

import (
	"context"
	"testing"

	diagnosisdomain "kisan-backend/internal/diagnosis/domain"
	diagnosisrepo "kisan-backend/internal/diagnosis/repository"
	diagnosisUsecase "kisan-backend/internal/diagnosis/usecase"
	helpdomain "kisan-backend/internal/help/domain"
	helprepo "kisan-backend/internal/help/repository"
	marketdomain "kisan-backend/internal/market/domain"
	marketrepo "kisan-backend/internal/market/repository"
	marketUsecase "kisan-backend/internal/market/usecase"
	schemedomain "kisan-backend/internal/scheme/domain"
	schemerepo "kisan-backend/internal/scheme/repository"
	schemeUsecase "kisan-backend/internal/scheme/usecase"
	"kisan-backend/pkg/classifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAgent(t *testing.T) (VoiceAgentUsecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&diagnosisdomain.CropDiagnosis{},
		&marketdomain.MarketPrice{},
		&schemedomain.Scheme{},
		&schemedomain.SchemeApplication{},
		&helpdomain.HelpHistory{},
	))

	diagnosisUc := diagnosisUsecase.NewDiagnosisUsecase(diagnosisrepo.NewDiagnosisRepository(db), classifier.NewMockClassifier(), nil)
	marketUc := marketUsecase.NewMarketUsecase(marketrepo.NewMarketRepository(db))
	schemeUc := schemeUsecase.NewSchemeUsecase(schemerepo.NewSchemeRepository(db), nil)
	agent := NewVoiceAgentUsecase(diagnosisUc, marketUc, schemeUc, helprepo.NewHelpRepository(db))
	return agent, db
}

func TestVoiceAgentRoutesDiagnoseIntent(t *testing.T) {
	agent, db := newTestAgent(t)

	response, err := agent.Handle(context.Background(), "user-1", "diagnose", map[string]string{"crop": "rice"})
	require.NoError(t, err)
	assert.Equal(t, "diagnose", response["action"])
	assert.NotEmpty(t, response["result"])

	// The diagnosis was persisted like a direct API call would be.
	var count int64
	require.NoError(t, db.Model(&diagnosisdomain.CropDiagnosis{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVoiceAgentRoutesMarketIntent(t *testing.T) {
	agent, db := newTestAgent(t)

	require.NoError(t, marketrepo.NewMarketRepository(db).Upsert(&marketdomain.MarketPrice{
		Crop: "Wheat", Mandi: "Hubli", Price: 2100, Trend: "up",
	}))

	response, err := agent.Handle(context.Background(), "user-1", "Market", map[string]string{"crop": "wheat"})
	require.NoError(t, err)
	assert.Equal(t, "market", response["action"])
	prices, ok := response["prices"].([]marketdomain.MarketPrice)
	require.True(t, ok)
	assert.Len(t, prices, 1)
}

func TestVoiceAgentRoutesSchemesIntent(t *testing.T) {
	agent, db := newTestAgent(t)

	require.NoError(t, db.Create(&schemedomain.Scheme{ID: "s1", Name: "PM-Kisan"}).Error)

	response, err := agent.Handle(context.Background(), "user-1", "schemes", nil)
	require.NoError(t, err)
	assert.Equal(t, "schemes", response["action"])
}

func TestVoiceAgentUnknownIntent(t *testing.T) {
	agent, _ := newTestAgent(t)

	response, err := agent.Handle(context.Background(), "user-1", "weather", nil)
	require.NoError(t, err)
	assert.Equal(t, "intent not recognized", response["message"])
}

func TestVoiceAgentRecordsHelpHistory(t *testing.T) {
	agent, db := newTestAgent(t)

	_, err := agent.Handle(context.Background(), "user-1", "schemes", nil)
	require.NoError(t, err)
	_, err = agent.Handle(context.Background(), "user-1", "weather", nil)
	require.NoError(t, err)

	records, err := helprepo.NewHelpRepository(db).FindByUserID("user-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
