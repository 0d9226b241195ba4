package status

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/application"
	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// activationWindow is the longest code lifetime the expiry colors fade over.
const activationWindow = 10 * time.Minute

type RenderOptions struct {
	Now time.Time
}

func RenderSession(status application.SessionStatus) (string, error) {
	return run(func(s styles) string { return sessionView(status, s) })
}

func RenderProfiles(profiles []application.ProfileStatus) (string, error) {
	return run(func(s styles) string { return profilesView(profiles, s) })
}

func RenderActivation(info domain.RequisitionInfo, opts RenderOptions) (string, error) {
	return run(func(s styles) string { return activationView(info, opts, s) })
}

func sessionView(status application.SessionStatus, s styles) string {
	lines := []string{
		s.title.Render("Cloud Wallet Session"),
		s.header.Render(profileLabel(status.Profile)),
		s.detail.Render("state: " + string(status.State)),
	}

	if status.User == nil {
		lines = append(lines, s.empty.Render("Not logged in."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(userBlock(*status.User, s)))
	lines = append(lines, s.section.Render(whitelistBlock(status.Whitelist, s)))
	if status.Signed != nil {
		lines = append(lines, s.section.Render(signedBlock(*status.Signed, s)))
	}
	if status.Proof != nil {
		lines = append(lines, s.section.Render(proofBlock(*status.Proof, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileLabel(profile domain.Profile) string {
	label := "profile: " + string(profile.ID)
	if name := strings.TrimSpace(profile.Name); name != "" {
		label += " (" + name + ")"
	}
	if profile.ChainID != "" {
		label += " · chain " + shorten(profile.ChainID, 12)
	}
	return label
}

func userBlock(user domain.User, s styles) string {
	title := "Account: " + string(user.Account)
	tags := make([]string, 0, 2)
	if user.IsTemporary {
		tags = append(tags, s.warning.Render("[temporary]"))
	}
	if user.ProofVerified {
		tags = append(tags, s.ok.Render("[proof verified]"))
	}

	parts := []string{strings.Join(append([]string{s.account.Render(title)}, tags...), " ")}
	for _, key := range user.Keys {
		parts = append(parts, s.key.Render("key: ")+s.detail.Render(key))
	}
	if user.TrustScore > 0 {
		parts = append(parts, s.meta.Render("trust score: "+strconv.FormatFloat(user.TrustScore, 'f', 2, 64)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func whitelistBlock(whitelist domain.Whitelist, s styles) string {
	if len(whitelist) == 0 {
		return s.empty.Render("auto-sign: no whitelisted contracts")
	}

	parts := []string{s.key.Render(fmt.Sprintf("auto-sign: %d whitelisted contract(s)", len(whitelist)))}
	for _, entry := range whitelist {
		line := "  " + string(entry.Contract)
		if len(entry.Recipients) > 0 {
			recipients := make([]string, 0, len(entry.Recipients))
			for _, recipient := range entry.Recipients {
				recipients = append(recipients, string(recipient))
			}
			line += " → " + strings.Join(recipients, ", ")
		}
		parts = append(parts, s.detail.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func signedBlock(signed domain.SignedTransaction, s styles) string {
	parts := []string{
		s.ok.Render(fmt.Sprintf("signed: %d signature(s), %d bytes", len(signed.Signatures), len(signed.SerializedTransaction))),
	}
	for _, signature := range signed.Signatures {
		parts = append(parts, s.detail.Render("  "+signature))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func proofBlock(proof domain.ProofResult, s styles) string {
	parts := []string{s.ok.Render("proof: " + proof.Signature)}
	if proof.Referer != "" {
		parts = append(parts, s.meta.Render("  referer: "+proof.Referer))
	}
	if proof.AccountName != "" {
		parts = append(parts, s.meta.Render("  account: "+string(proof.AccountName)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func profilesView(profiles []application.ProfileStatus, s styles) string {
	lines := []string{
		s.title.Render("Wallet Profiles"),
		s.header.Render(fmt.Sprintf("profiles: %d", len(profiles))),
	}
	if len(profiles) == 0 {
		lines = append(lines, s.empty.Render("No profiles configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range profiles {
		title := s.account.Render(string(entry.Profile.ID))
		if entry.Active {
			title += " " + s.activeTag.Render("(active)")
		}
		parts := []string{title}
		if entry.Profile.Name != "" {
			parts = append(parts, s.meta.Render(entry.Profile.Name))
		}
		parts = append(parts,
			s.key.Render("signing: ")+s.detail.Render(entry.Profile.SigningURL),
			s.key.Render("rpc: ")+s.detail.Render(entry.Profile.RPCURL),
		)
		if entry.Profile.AutoSigningURL != "" {
			parts = append(parts, s.key.Render("auto-sign: ")+s.detail.Render(entry.Profile.AutoSigningURL))
		} else {
			parts = append(parts, s.empty.Render("auto-sign: disabled"))
		}
		if entry.Profile.ActivationURL != "" {
			parts = append(parts, s.key.Render("activation: ")+s.detail.Render(entry.Profile.ActivationURL))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func activationView(info domain.RequisitionInfo, opts RenderOptions, s styles) string {
	expiresAt := info.ExpiresAt()
	expiryStyle := lipgloss.NewStyle().Foreground(expiryColor(expiresAt, opts.Now))

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Connect your wallet"),
		s.detail.Render("Enter this code in your wallet to activate this client:"),
		s.code.Render(info.Code),
		expiryStyle.Render(formatExpiry(expiresAt, opts.Now)),
		s.empty.Render("Waiting for approval..."),
	)
}

func formatExpiry(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "expires at " + expiresAt.Format("15:04:05")
	}
	if !expiresAt.After(now) {
		return "expired"
	}

	expiresAt = expiresAt.In(now.Location())
	remaining := expiresAt.Sub(now)
	if remaining < time.Minute {
		return fmt.Sprintf("expires in %d seconds (%s)", int(math.Ceil(remaining.Seconds())), expiresAt.Format("15:04:05"))
	}

	minutes := int(math.Ceil(remaining.Minutes()))
	suffix := "minutes"
	if minutes == 1 {
		suffix = "minute"
	}
	return fmt.Sprintf("expires in %d %s (%s)", minutes, suffix, expiresAt.Format("15:04"))
}

// expiryColor fades from grey towards red as the code nears expiry.
func expiryColor(expiresAt, now time.Time) lipgloss.Color {
	if now.IsZero() {
		return lipgloss.Color("252")
	}
	if !expiresAt.After(now) {
		return lipgloss.Color("203")
	}

	remaining := expiresAt.Sub(now).Seconds()
	return interpolateColor(activationWindow.Seconds()-remaining, 0, activationWindow.Seconds())
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("252")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 ramp from 245 (grey) to 196 (red).
	palette := []string{"245", "181", "217", "210", "203", "196"}
	index := int(math.Round(normalized * float64(len(palette)-1)))
	return lipgloss.Color(palette[index])
}

func shorten(value string, keep int) string {
	if len(value) <= keep {
		return value
	}
	return value[:keep] + "…"
}
