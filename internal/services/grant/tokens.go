package grant

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/kits/internal/models"
)

var tokenPattern = regexp.MustCompile(`\{\{.+?\}\}`)

// TokenResolver fills {{...}} markers in item names and lore for a recipient.
// Unknown tokens are left as they are.
type TokenResolver struct {
	tokens map[string]func(kit *models.Kit, player *models.Player) string
}

// NewTokenResolver creates a resolver that knows {{player}}, {{displayname}},
// {{uuid}} and {{kit}}
func NewTokenResolver() *TokenResolver {
	return &TokenResolver{
		tokens: map[string]func(*models.Kit, *models.Player) string{
			"player":      func(_ *models.Kit, p *models.Player) string { return p.Name },
			"displayname": func(_ *models.Kit, p *models.Player) string { return p.VisibleName() },
			"uuid":        func(_ *models.Kit, p *models.Player) string { return p.ID },
			"kit":         func(k *models.Kit, _ *models.Player) string { return k.Name },
		},
	}
}

// Register adds or replaces a token. The name is matched case-insensitively
// and without braces.
func (r *TokenResolver) Register(name string, value func(kit *models.Kit, player *models.Player) string) {
	r.tokens[strings.ToLower(name)] = value
}

// ResolveStack returns a copy of the stack with its tokens filled in
func (r *TokenResolver) ResolveStack(stack *models.ItemStack, kit *models.Kit, player *models.Player) *models.ItemStack {
	resolved := stack.Clone()
	resolved.DisplayName = r.ResolveText(resolved.DisplayName, kit, player)
	for i, line := range resolved.Lore {
		resolved.Lore[i] = r.ResolveText(line, kit, player)
	}
	return resolved
}

// ResolveText fills every known token in text
func (r *TokenResolver) ResolveText(text string, kit *models.Kit, player *models.Player) string {
	if !strings.Contains(text, "{{") {
		return text
	}

	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := strings.ToLower(strings.TrimSpace(token[2 : len(token)-2]))
		value, ok := r.tokens[name]
		if !ok {
			return token
		}
		return value(kit, player)
	})
}
