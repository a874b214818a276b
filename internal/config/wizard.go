package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/campusbot/internal/responder"
)

const randomAgentChoice = "random (pick a new name each session)"

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to campusbot! Let's set up your assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Assistant name.
	agentPrompt := promptui.Select{
		Label: "Assistant name",
		Items: append([]string{randomAgentChoice}, responder.AgentNames...),
	}
	agentIdx, agentName, err := agentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("agent name selection: %w", err)
	}
	if agentIdx > 0 {
		cfg.AgentName = agentName
	}

	// 2. Default user name.
	userPrompt := promptui.Prompt{
		Label:   "Default user name (leave blank to ask every time)",
		Default: "",
	}
	userName, err := userPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("user name: %w", err)
	}
	cfg.UserName = strings.TrimSpace(userName)

	// 3. Knowledge files.
	knowledgePrompt := promptui.Prompt{
		Label:   "Facility YAML files (comma-separated globs, blank for built-in campus)",
		Default: "",
	}
	knowledgeStr, err := knowledgePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("knowledge files: %w", err)
	}
	cfg.KnowledgeFiles = splitAndTrim(knowledgeStr)

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP server port",
		Default:  strconv.Itoa(DefaultPort),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 5. CORS.
	corsPrompt := promptui.Select{
		Label: "Accept browser requests from any origin?",
		Items: []string{"no (localhost only)", "yes"},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}
	cfg.Server.AllowAllOrigins = corsIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
