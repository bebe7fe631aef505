package generation

import (
	"fmt"
	"strings"
)

// FallbackLesson returns the templated lesson used when no backend can answer.
// The output depends only on topic and difficulty.
func FallbackLesson(topic string, difficulty Difficulty) string {
	return fmt.Sprintf(fallbackLessonTemplate, topic, int(difficulty))
}

const fallbackLessonTemplate = `
# Learning About: %[1]s

## Introduction
Welcome to your personalized lesson on **%[1]s**! This lesson is designed to help you understand the key concepts and practical applications at difficulty level %[2]d.

## Key Concepts

### Foundation
Understanding %[1]s starts with grasping its fundamental principles. This topic is important because it connects to many real-world applications and can enhance your knowledge in related areas.

### Core Elements
1. **Basic Definition**: %[1]s encompasses several important aspects that we'll explore
2. **Key Components**: Breaking down the main parts helps build understanding
3. **Relationships**: How %[1]s connects to other concepts you may already know

## Practical Applications
%[1]s is used in various real-world scenarios:
- Everyday applications that you might encounter
- Professional or academic contexts
- Problem-solving situations

## Interactive Learning
Think about these questions as you learn:
- How does %[1]s relate to your personal interests?
- Where have you encountered %[1]s before?
- What questions do you have about %[1]s?

## Summary
By understanding %[1]s, you're building valuable knowledge that can be applied in many situations. The key takeaways include the fundamental concepts, practical applications, and connections to other areas of learning.

**Remember**: Learning is a journey, and every question you ask helps deepen your understanding!
`

// ChatCategory is the keyword class a chat message falls into.
type ChatCategory int

const (
	ChatDefault ChatCategory = iota
	ChatQuestion
	ChatExplain
	ChatHelp
)

// chatKeywords is checked in order; the first category with a matching
// keyword wins.
var chatKeywords = []struct {
	category ChatCategory
	words    []string
}{
	{ChatQuestion, []string{"what", "how", "why", "when", "where"}},
	{ChatExplain, []string{"explain", "tell me", "describe"}},
	{ChatHelp, []string{"help", "stuck", "confused", "difficult"}},
}

// ClassifyChat assigns message to a ChatCategory by case-insensitive substring
// match.
func ClassifyChat(message string) ChatCategory {
	lower := strings.ToLower(message)
	for _, group := range chatKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.category
			}
		}
	}
	return ChatDefault
}

// FallbackChat returns the canned reply for message's keyword category.
func FallbackChat(message string) string {
	switch ClassifyChat(message) {
	case ChatQuestion:
		return fmt.Sprintf("That's a great question about '%s'. Based on educational principles, I'd suggest breaking this down into smaller parts. What specific aspect would you like to explore first? This approach helps build understanding step by step.", message)
	case ChatExplain:
		return fmt.Sprintf("I'd be happy to help explain that! When learning about '%s', it's helpful to start with the basics and build up. Think about what you already know about this topic and how it might connect to new information.", message)
	case ChatHelp:
		return "I understand that learning can sometimes be challenging! Here are some strategies that often help: 1) Break the problem into smaller pieces, 2) Connect new information to what you already know, 3) Ask specific questions about the parts that confuse you. What specific part would you like to focus on?"
	default:
		return fmt.Sprintf("Thank you for sharing that thought about '%s'. Learning is most effective when we engage actively with the material. How do you think this connects to what we've been discussing? What questions does this raise for you?", message)
	}
}

// FallbackImageAnalysis returns the static image guidance.
func FallbackImageAnalysis() ImageAnalysis {
	return ImageAnalysis{
		Description:      "This image contains visual content that can support your learning. While I cannot analyze the specific details right now, images are powerful learning tools that can help reinforce concepts.",
		RelevantConcepts: []string{"Visual learning", "Image interpretation", "Multimedia education"},
		Suggestions:      "Consider how this image relates to your current lesson. What details do you notice? How might they connect to the concepts you are studying? Visual elements often provide additional context and examples.",
	}
}

// FallbackQuiz returns the single placeholder question for topic. The first
// option is always the correct one.
func FallbackQuiz(topic string) QuizSet {
	return QuizSet{
		Questions: []QuizQuestion{{
			Question:      fmt.Sprintf("What is the main concept of %s?", topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
		}},
	}
}

// FallbackDiagram returns a boxed-text diagram naming concept.
func FallbackDiagram(concept string) string {
	return fmt.Sprintf(`
┌─────────────┐
│  %s   │
│  Overview   │
└─────┬───────┘
      │
      ▼
┌─────────────┐
│   Details   │
└─────────────┘`, concept)
}
