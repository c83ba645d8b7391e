package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	diagnosisUsecase "kisan-backend/internal/diagnosis/usecase"
	helpdomain "kisan-backend/internal/help/domain"
	helprepo "kisan-backend/internal/help/repository"
	marketUsecase "kisan-backend/internal/market/usecase"
	schemeUsecase "kisan-backend/internal/scheme/usecase"
)

// VoiceAgentUsecase routes a recognized intent to the matching feature.
// The intent string comes from on-device speech recognition; routing is
// plain string matching, unknown intents get a help message.
type VoiceAgentUsecase interface {
	Handle(ctx context.Context, userID, intent string, parameters map[string]string) (map[string]interface{}, error)
}

// voiceAgentUsecase implements VoiceAgentUsecase interface
type voiceAgentUsecase struct {
	diagnosisUC diagnosisUsecase.DiagnosisUsecase
	marketUC    marketUsecase.MarketUsecase
	schemeUC    schemeUsecase.SchemeUsecase
	helpRepo    helprepo.HelpRepository
}

// NewVoiceAgentUsecase creates a new instance of voiceAgentUsecase
func NewVoiceAgentUsecase(diagnosisUC diagnosisUsecase.DiagnosisUsecase, marketUC marketUsecase.MarketUsecase, schemeUC schemeUsecase.SchemeUsecase, helpRepo helprepo.HelpRepository) VoiceAgentUsecase {
	return &voiceAgentUsecase{
		diagnosisUC: diagnosisUC,
		marketUC:    marketUC,
		schemeUC:    schemeUC,
		helpRepo:    helpRepo,
	}
}

func (u *voiceAgentUsecase) Handle(ctx context.Context, userID, intent string, parameters map[string]string) (map[string]interface{}, error) {
	var response map[string]interface{}

	switch strings.ToLower(strings.TrimSpace(intent)) {
	case "diagnose":
		crop := parameters["crop"]
		if crop == "" {
			response = map[string]interface{}{"action": "diagnose", "message": "which crop should I check?"}
			break
		}
		result, err := u.diagnosisUC.Diagnose(ctx, userID, crop, parameters["description"], "")
		if err != nil {
			return nil, err
		}
		response = map[string]interface{}{"action": "diagnose", "crop": crop, "result": result.Result}

	case "market":
		crop := parameters["crop"]
		if crop == "" {
			response = map[string]interface{}{"action": "market", "message": "which crop price do you want?"}
			break
		}
		prices, err := u.marketUC.GetPrices(crop, parameters["mandi"])
		if err != nil {
			return nil, err
		}
		response = map[string]interface{}{"action": "market", "crop": crop, "prices": prices}

	case "schemes":
		schemes, err := u.schemeUC.EligibleSchemes()
		if err != nil {
			return nil, err
		}
		response = map[string]interface{}{"action": "schemes", "eligible_schemes": schemes}

	default:
		response = map[string]interface{}{"message": "intent not recognized"}
	}

	u.recordHistory(userID, intent, parameters, response)
	return response, nil
}

// recordHistory appends the query and its answer to the farmer's help
// history. Best effort: a failed write never fails the request.
func (u *voiceAgentUsecase) recordHistory(userID, intent string, parameters map[string]string, response map[string]interface{}) {
	query := intent
	if len(parameters) > 0 {
		if encoded, err := json.Marshal(parameters); err == nil {
			query = intent + " " + string(encoded)
		}
	}

	result := ""
	if encoded, err := json.Marshal(response); err == nil {
		result = string(encoded)
	}

	record := &helpdomain.HelpHistory{
		UserID: userID,
		Query:  query,
		Result: result,
	}
	if err := u.helpRepo.Create(record); err != nil {
		log.Printf("[VoiceAgent] Failed to record help history: %v", err)
	}
}
