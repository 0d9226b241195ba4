package application

import "github.com/bnema/cloudwallet-cli/internal/domain"

// AddProfileCommand saves Profile, optionally starting from the stored
// profile From and keeping its values where Profile leaves them empty.
type AddProfileCommand struct {
	Profile   domain.Profile
	From      domain.ProfileID
	Overwrite bool
}
