package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"talentloop/internal/assessment"
	"talentloop/internal/catalog"
	"talentloop/internal/config"
	"talentloop/internal/domain"
	"talentloop/internal/llm"
	"talentloop/internal/output"
	"talentloop/internal/session"
	"talentloop/internal/textsignal"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	cat, err := catalog.New()
	if err != nil {
		log.Fatal(err)
	}

	scorer := textsignal.DefaultScorer
	pipeline := assessment.NewPipeline(scorer, cat.Attribute)

	fmt.Print("Candidate name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Candidate"
	}

	iv, opening, err := session.StartInterview(cat, pipeline, logger, name)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("===== Interview Mode (type 'quit' to abandon) =====")
	fmt.Printf("%s > %s\n", opening.Character, opening.Text)

	var complete *session.InterviewComplete
	for complete == nil {
		fmt.Print("You > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("read input: %v", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "quit") || strings.EqualFold(text, "exit") {
			fmt.Println("Interview abandoned.")
			return
		}

		prompt, done, err := iv.ProcessResponse(text)
		if err != nil {
			log.Fatalf("process response: %v", err)
		}
		if done != nil {
			complete = done
			break
		}
		fmt.Printf("%s > %s\n", prompt.Character, prompt.Text)
	}

	result := complete.Result
	fmt.Println("\n===== Assessment =====")
	printJSON("Stat sheet", output.StatSheetHandler{}.Format(result))
	printJSON("Formal rating", output.FormalRatingHandler{}.Format(result))
	printJSON("Candidate summary", output.CandidateSummaryHandler{}.Format(result))

	if cfg.LLMAPIKey != "" {
		runLLMReview(ctx, cfg, logger, scorer, result)
	}
}

// runLLMReview asks an external model for a second opinion and reconciles it
// against the algorithmic result.
func runLLMReview(ctx context.Context, cfg *config.Config, logger *zap.Logger, scorer textsignal.Scorer, result *domain.AssessmentResult) {
	fmt.Println("\nRequesting LLM review...")

	client := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, nil)
	raw, err := client.Generate(ctx, reviewPrompt(result))
	if err != nil {
		fmt.Printf("LLM review failed: %v\n", err)
		return
	}

	parsed, err := assessment.ParseLLMAssessment(raw)
	if err != nil {
		fmt.Printf("could not parse LLM reply: %v\n", err)
		return
	}
	if err := assessment.NewSchemaValidator().Validate(parsed); err != nil {
		fmt.Printf("LLM reply failed validation: %v\n", err)
		return
	}

	hybrid := assessment.NewHybridValidator(scorer, logger)
	final, validation := hybrid.BuildHybridAssessment(result, parsed)

	for _, warning := range validation.BiasWarnings {
		fmt.Printf("warning: %s\n", warning)
	}
	printJSON("Hybrid internal report", output.InternalReportHandler{}.Format(final))
}

func reviewPrompt(result *domain.AssessmentResult) string {
	var b strings.Builder
	b.WriteString("You are reviewing a candidate interview. Score each dimension 0-10 and reply with ONLY a JSON object ")
	b.WriteString(`with keys "dimensions" (object keyed iq, personality, motivation, work_history, passions, culture_fit, technical, gtm, eq, empathy, self_awareness), `)
	b.WriteString(`"archetype", "archetype_confidence", "recommended_tier", "green_flags", "red_flags".` + "\n\nTranscript:\n")
	for _, e := range result.Transcript {
		speaker := e.Character
		if e.Speaker == domain.SpeakerCandidate {
			speaker = result.CandidateName
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, e.Text)
	}
	return b.String()
}

func printJSON(title string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%s: marshal error: %v\n", title, err)
		return
	}
	fmt.Printf("\n--- %s ---\n%s\n", title, data)
}
