package consultapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Each endpoint has its own decoder so a change in one response shape stays
// local to one function.

func decodeUserList(body []byte) ([]User, error) {
	var payload struct {
		Users []User `json:"users"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return payload.Users, nil
}

func decodeExpertList(body []byte) ([]Expert, error) {
	var payload struct {
		Experts []Expert `json:"experts"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode experts: %w", err)
	}
	return payload.Experts, nil
}

func decodeExpertDetail(body []byte) (Expert, error) {
	var payload struct {
		Expert *Expert `json:"expert"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Expert{}, fmt.Errorf("decode expert: %w", err)
	}
	if payload.Expert == nil {
		return Expert{}, errors.New("decode expert: missing expert")
	}
	return *payload.Expert, nil
}

func decodeCallStats(body []byte) (CallStats, error) {
	var stats CallStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return CallStats{}, fmt.Errorf("decode call stats: %w", err)
	}
	return stats, nil
}

// successEnvelope is the {success, message, data} shape of the catalog endpoints.
type successEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeSuccessEnvelope(body []byte, data any) error {
	var envelope successEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if !envelope.Success {
		return envelopeFailure{message: envelope.Message}
	}
	if data == nil {
		return nil
	}
	if len(envelope.Data) == 0 || bytes.Equal(bytes.TrimSpace(envelope.Data), jsonNull) {
		return envelopeFailure{}
	}
	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return envelopeFailure{}
	}
	return nil
}

func decodeExpertiseList(body []byte) ([]Expertise, error) {
	var items []Expertise
	if err := decodeSuccessEnvelope(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeQualificationList(body []byte) ([]Qualification, error) {
	var items []Qualification
	if err := decodeSuccessEnvelope(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeSuccess(body []byte) (struct{}, error) {
	return struct{}{}, decodeSuccessEnvelope(body, nil)
}

// decodeWalletList accepts a bare array as well as {wallets: [...]}.
func decodeWalletList(body []byte) ([]Wallet, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var wallets []Wallet
		if err := json.Unmarshal(trimmed, &wallets); err != nil {
			return nil, fmt.Errorf("decode wallets: %w", err)
		}
		return wallets, nil
	}
	var payload struct {
		Wallets []Wallet `json:"wallets"`
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("decode wallets: %w", err)
	}
	return payload.Wallets, nil
}

func decodePayoutList(body []byte) ([]Payout, error) {
	var payload struct {
		Data []Payout `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode payouts: %w", err)
	}
	return payload.Data, nil
}

func decodeWithdrawalList(body []byte) ([]Withdrawal, error) {
	var payload struct {
		Withdrawals []Withdrawal `json:"withdrawals"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode withdrawals: %w", err)
	}
	return payload.Withdrawals, nil
}

func decodeReviewList(body []byte) ([]Review, error) {
	var payload struct {
		Reviews []Review `json:"reviews"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return payload.Reviews, nil
}

func decodeCallList(body []byte) ([]Call, error) {
	var payload struct {
		Calls []Call `json:"calls"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode calls: %w", err)
	}
	return payload.Calls, nil
}

func decodeLogin(body []byte) (Session, error) {
	var payload struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Session{}, fmt.Errorf("decode login: %w", err)
	}
	if payload.User == nil || payload.Token == "" {
		return Session{}, errors.New("decode login: missing user or token")
	}
	return Session{User: *payload.User, Token: payload.Token}, nil
}

// decodeAck accepts any body of a mutation response, including an empty one,
// and only fails on an explicit success:false.
func decodeAck(body []byte) (struct{}, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return struct{}{}, nil
	}
	var payload struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return struct{}{}, fmt.Errorf("decode acknowledgement: %w", err)
	}
	if payload.Success != nil && !*payload.Success {
		return struct{}{}, envelopeFailure{message: payload.Message}
	}
	return struct{}{}, nil
}
