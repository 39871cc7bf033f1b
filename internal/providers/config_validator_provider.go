package providers

import (
	"fmt"
	"strings"
	"vcheck/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	templates := map[string]string{
		"upstream.gogContentUrl": cv.conf.Upstream.GogContentURL,
		"upstream.steamFeedUrl":  cv.conf.Upstream.SteamFeedURL,
	}
	for key, tpl := range templates {
		if !strings.Contains(tpl, "{game_id}") {
			return fmt.Errorf("%s must contain the {game_id} placeholder", key)
		}
	}
	if !strings.Contains(cv.conf.Upstream.GogContentURL, "{os}") {
		return fmt.Errorf("upstream.gogContentUrl must contain the {os} placeholder")
	}
	return nil
}
