package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phrazzld/tutor-api/internal/api"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/spf13/cobra"
)

func (c *cli) lessonCmd() *cobra.Command {
	var difficulty int

	cmd := &cobra.Command{
		Use:   "lesson <topic>",
		Short: "Generate a lesson on a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, err := joinedArg(args, "topic")
			if err != nil {
				return err
			}
			band := int(generation.NewDifficulty(difficulty))
			content := c.service.GenerateLesson(c.requestContext(cmd), topic, band)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
			return err
		},
	}
	cmd.Flags().IntVarP(&difficulty, "difficulty", "d", 1, "difficulty from 1 (beginner) to 5 (expert)")

	return cmd
}

func (c *cli) chatCmd() *cobra.Command {
	var lessonContext string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the tutor a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := joinedArg(args, "message")
			if err != nil {
				return err
			}
			reply := c.service.ChatResponse(c.requestContext(cmd), message, lessonContext)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}
	cmd.Flags().StringVar(&lessonContext, "context", "", "lesson text to ground the reply in")

	return cmd
}

func (c *cli) imageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image <path>",
		Short: "Get study guidance for an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
			if !api.AllowedImageExtension(ext) {
				return fmt.Errorf("invalid file type %q", filepath.Ext(path))
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", path)
			}
			if info.Size() > api.MaxImageBytes {
				return fmt.Errorf("image is larger than %d bytes", api.MaxImageBytes)
			}

			analysis := c.service.AnalyzeImage(c.requestContext(cmd), info.Size(), ext)
			return renderImageAnalysis(cmd.OutOrStdout(), filepath.Base(path), analysis)
		},
	}
}

func (c *cli) quizCmd() *cobra.Command {
	var (
		difficulty int
		content    string
	)

	cmd := &cobra.Command{
		Use:   "quiz <topic>",
		Short: "Generate a multiple-choice quiz",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, err := joinedArg(args, "topic")
			if err != nil {
				return err
			}
			result := c.service.GenerateQuiz(c.requestContext(cmd), topic, difficulty, content)
			return renderQuiz(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVarP(&difficulty, "difficulty", "d", 1, "difficulty from 1 (beginner) to 5 (expert)")
	cmd.Flags().StringVar(&content, "content", "", "lesson text to base the questions on")

	return cmd
}

func (c *cli) diagramCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "diagram <concept>",
		Short: "Generate a text diagram of a concept",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			concept, err := joinedArg(args, "concept")
			if err != nil {
				return err
			}
			diagram := c.service.GenerateDiagram(c.requestContext(cmd), concept, kind)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), diagram)
			return err
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(generation.DefaultDiagramKind), "diagram style, e.g. flowchart or mindmap")

	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which provider is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderStatus(cmd.OutOrStdout(), api.StatusResponse{
				Success:           true,
				PrimaryService:    c.service.PrimaryName(),
				AvailableServices: c.service.AvailableServices(),
				HasAI:             c.service.Available(),
			})
		},
	}
}

// joinedArg joins positional words into one value so multi-word topics do
// not need quoting.
func joinedArg(args []string, name string) (string, error) {
	v := strings.TrimSpace(strings.Join(args, " "))
	if v == "" {
		return "", errors.New(name + " is required")
	}
	return v, nil
}
