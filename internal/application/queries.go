package application

import "github.com/bnema/cloudwallet-cli/internal/domain"

type ProfileStatus struct {
	Profile domain.Profile
	Active  bool
}

// SessionStatus is a point-in-time view of a SigningService for display.
type SessionStatus struct {
	Profile   domain.Profile
	State     domain.State
	User      *domain.User
	Whitelist domain.Whitelist
	Signed    *domain.SignedTransaction
	Proof     *domain.ProofResult
}

func (s *SigningService) Status(profile domain.Profile) SessionStatus {
	status := SessionStatus{Profile: profile, State: s.State()}
	if session := s.Session(); session != nil {
		user := session.User
		status.User = &user
		status.Whitelist = session.Whitelist
	}
	return status
}
