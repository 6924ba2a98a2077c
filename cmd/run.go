package cmd

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spigell/career-compass/internal/career"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/profiles"
	"github.com/spigell/career-compass/internal/recommend"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptNewProfile       = "Create a new profile"
	PromptLoadProfile      = "Load a saved profile"
	PromptSaveProfile      = "Save the current profile"
	PromptAddCompetency    = "Add or update a competency"
	PromptRemoveCompetency = "Remove a competency"
	PromptShowProfile      = "Show the current profile"
	PromptRecommend        = "Generate recommendations"
	PromptListSaved        = "List saved profiles"
	PromptBack             = "back"
	PromptExit             = "Exit"

	defaultProfilesDir = "profiles"
	gapPlanSize        = 5
	missingLogLimit    = 120
)

var errExit = errors.New("exit requested")

var menu = promptui.Select{
	Label: "Choose an action",
	Items: []string{
		PromptNewProfile,
		PromptLoadProfile,
		PromptSaveProfile,
		PromptAddCompetency,
		PromptRemoveCompetency,
		PromptShowProfile,
		PromptRecommend,
		PromptListSaved,
		PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive career-compass session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("profiles-dir", "p", "", "directory with saved profiles. Default is ./profiles.")
	runCmd.Flags().Float64("min-ratio", 0, "drop careers whose match ratio is below this value")
	runCmd.Flags().Int("top-n", 0, "truncate recommendations to the first N entries. 0 means unlimited.")

	viper.BindPFlag("profiles-dir", runCmd.Flags().Lookup("profiles-dir"))
	viper.BindPFlag("recommend.min-ratio", runCmd.Flags().Lookup("min-ratio"))
	viper.BindPFlag("recommend.top-n", runCmd.Flags().Lookup("top-n"))
}

// session holds the state of one interactive run.
type session struct {
	logger  *zap.Logger
	store   *profiles.Store
	catalog *career.Catalog
	opts    recommend.Options
	profile *career.Profile
}

// run is the main command for the cli.
func run(_ *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the career-compass", zap.String("version", version))

	catalog, err := buildCatalog()
	if err != nil {
		logger.Fatal("building the career catalog", zap.Error(err))
	}

	logger.Info("career catalog ready", zap.Int("careers", catalog.Len()))

	opts := recommend.Options{
		MinRatio: viper.GetFloat64("recommend.min-ratio"),
		TopN:     viper.GetInt("recommend.top-n"),
	}
	if config != nil && config.Recommend != nil {
		if opts.MinRatio == 0 {
			opts.MinRatio = config.Recommend.MinRatio
		}
		if opts.TopN == 0 {
			opts.TopN = config.Recommend.TopN
		}
	}

	dir := strings.TrimSpace(viper.GetString("profiles-dir"))
	if dir == "" && config != nil {
		dir = strings.TrimSpace(config.ProfilesDir)
	}
	if dir == "" {
		dir = defaultProfilesDir
	}

	s := &session{
		logger:  logger,
		store:   profiles.NewStore(dir),
		catalog: catalog,
		opts:    opts,
	}

	for {
		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := s.handleAction(action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (s *session) handleAction(action string) error {
	switch action {
	case PromptNewProfile:
		return s.newProfile()
	case PromptLoadProfile:
		return s.loadProfile()
	case PromptSaveProfile:
		return s.saveProfile()
	case PromptAddCompetency:
		return s.addCompetency()
	case PromptRemoveCompetency:
		return s.removeCompetency()
	case PromptShowProfile:
		return s.showProfile()
	case PromptRecommend:
		return s.recommendCareers()
	case PromptListSaved:
		return s.listSaved()
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) newProfile() error {
	prompt := promptui.Prompt{
		Label: "Owner name",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return career.ErrInvalidName
			}
			return nil
		},
	}

	owner, err := prompt.Run()
	if err != nil {
		return err
	}

	s.profile = career.NewProfile(owner)
	logger.WithProfile(s.logger, s.profile.Owner).Info("profile created")
	return nil
}

func (s *session) loadProfile() error {
	names, err := s.store.List()
	if err != nil {
		return fmt.Errorf("listing saved profiles: %w", err)
	}

	if len(names) == 0 {
		s.logger.Info("no saved profiles", zap.String("dir", s.store.Dir))
		return nil
	}

	prompt := promptui.Select{
		Label: "Choose a profile and press ENTER",
		Items: append(names, PromptBack),
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	profile, err := s.store.LoadFile(selected)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	s.profile = profile
	logger.WithProfile(s.logger, profile.Owner).Info("profile loaded",
		zap.Int("competencies", profile.Len()),
	)
	return nil
}

func (s *session) saveProfile() error {
	if s.profile == nil {
		s.logger.Info("no profile in memory", zap.String("hint", "create or load a profile first"))
		return nil
	}

	path, err := s.store.Save(s.profile)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	logger.WithProfile(s.logger, s.profile.Owner).Info("profile saved", zap.String("path", path))
	return nil
}

func (s *session) addCompetency() error {
	if s.profile == nil {
		s.logger.Info("no profile in memory", zap.String("hint", "create or load a profile first"))
		return nil
	}

	namePrompt := promptui.Prompt{
		Label: "Competency name",
		Validate: func(input string) error {
			if career.Normalize(input) == "" {
				return career.ErrInvalidName
			}
			return nil
		},
	}

	name, err := namePrompt.Run()
	if err != nil {
		return err
	}

	levelPrompt := promptui.Prompt{
		Label: fmt.Sprintf("Level (%d-%d)", career.MinLevel, career.MaxLevel),
		Validate: func(input string) error {
			level, convErr := strconv.Atoi(strings.TrimSpace(input))
			if convErr != nil {
				return fmt.Errorf("enter a whole number")
			}
			if level < career.MinLevel || level > career.MaxLevel {
				return career.ErrInvalidLevel
			}
			return nil
		},
	}

	rawLevel, err := levelPrompt.Run()
	if err != nil {
		return err
	}

	level, err := strconv.Atoi(strings.TrimSpace(rawLevel))
	if err != nil {
		return err
	}

	if err := s.profile.AddOrUpdateCompetency(name, level); err != nil {
		return err
	}

	logger.WithProfile(s.logger, s.profile.Owner).Info("competency added",
		zap.String("competency", career.Normalize(name)),
		zap.Int("level", level),
	)
	return nil
}

func (s *session) removeCompetency() error {
	if s.profile == nil {
		s.logger.Info("no profile in memory", zap.String("hint", "create or load a profile first"))
		return nil
	}

	prompt := promptui.Prompt{Label: "Competency name to remove"}
	name, err := prompt.Run()
	if err != nil {
		return err
	}

	s.profile.RemoveCompetency(name)
	logger.WithProfile(s.logger, s.profile.Owner).Info("competency removed",
		zap.String("competency", career.Normalize(name)),
	)
	return nil
}

func (s *session) showProfile() error {
	if s.profile == nil {
		s.logger.Info("no profile in memory", zap.String("hint", "create or load a profile first"))
		return nil
	}

	fmt.Printf("\nProfile: %s\n", s.profile.Owner)
	for c := range s.profile.All() {
		fmt.Printf(" - %s: %d\n", c.Name, c.Level)
	}
	fmt.Println()
	return nil
}

func (s *session) recommendCareers() error {
	if s.profile == nil {
		s.logger.Info("no profile in memory", zap.String("hint", "create or load a profile first"))
		return nil
	}

	results, err := recommend.Recommend(s.profile, s.catalog, s.opts)
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyCatalog) {
			s.logger.Warn("the career catalog is empty", zap.Error(err))
			return nil
		}
		return fmt.Errorf("recommend: %w", err)
	}

	if len(results) == 0 {
		s.logger.Info("no careers above the minimum match ratio",
			zap.Float64("min_ratio", s.opts.MinRatio),
		)
		return nil
	}

	fmt.Println("\nRecommendations:")
	for rank, rec := range results {
		fmt.Printf("%d) %s - %.0f%% (%d/%d requirements)\n",
			rank+1, rec.Career, rec.Ratio*100, rec.Matched, rec.Required,
		)
		if len(rec.Missing) > 0 {
			fmt.Printf("   Missing: %s\n", formatMissing(rec.Missing))
		}
	}

	top := results[0]
	logger.WithProfile(s.logger, s.profile.Owner).Info("recommendations generated",
		zap.Int("count", len(results)),
		zap.String("best_career", top.Career),
		zap.Float64("best_ratio", top.Ratio),
		zap.String("best_missing", logger.TruncateForLog(formatMissing(top.Missing), missingLogLimit)),
	)

	if plan := recommend.GapPlan(s.profile, s.catalog.FindByName(top.Career), gapPlanSize); len(plan) > 0 {
		fmt.Printf("\nSuggested next steps for %s:\n", top.Career)
		for _, step := range plan {
			fmt.Printf(" - %s\n", step)
		}
	}
	fmt.Println()

	return nil
}

func (s *session) listSaved() error {
	names, err := s.store.List()
	if err != nil {
		return fmt.Errorf("listing saved profiles: %w", err)
	}

	if len(names) == 0 {
		s.logger.Info("no saved profiles", zap.String("dir", s.store.Dir))
		return nil
	}

	fmt.Println("\nSaved profiles:")
	for _, name := range names {
		fmt.Printf(" - %s\n", name)
	}
	fmt.Println()
	return nil
}

func formatMissing(missing []recommend.Gap) string {
	parts := make([]string, 0, len(missing))
	for _, gap := range missing {
		actual := "absent"
		if gap.Present {
			actual = strconv.Itoa(gap.ActualLevel)
		}
		parts = append(parts, fmt.Sprintf("%s (need %d, have %s)", gap.Skill, gap.RequiredLevel, actual))
	}
	return strings.Join(parts, ", ")
}
