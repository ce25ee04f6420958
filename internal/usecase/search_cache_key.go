package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"resume-match/internal/search"
)

type jobSearchCacheKeyInput struct {
	Role     string `json:"role"`
	Location string `json:"location"`
	Company  string `json:"company"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func JobsSearchCacheKey(q search.Query) string {
	in := jobSearchCacheKeyInput{
		Role:     normalizeSearchValue(q.Role),
		Location: normalizeSearchValue(q.Location),
		Company:  normalizeSearchValue(q.Company),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}
