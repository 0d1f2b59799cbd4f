package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"carbon/internal/dedupe"
	"carbon/internal/resolver"
)

// promptDecider asks the user what to do with each duplicate group, once
// per group, immediately before that group is processed.
type promptDecider struct {
	in            *bufio.Reader
	out           io.Writer
	defaultTarget string
}

func newPromptDecider(in io.Reader, out io.Writer, defaultTarget string) *promptDecider {
	return &promptDecider{in: bufio.NewReader(in), out: out, defaultTarget: defaultTarget}
}

func (p *promptDecider) Decide(_ context.Context, group dedupe.Group) (resolver.Decision, error) {
	fmt.Fprintf(p.out, "\nFound %d duplicate files:\n", len(group.Members))
	for i, member := range group.Members {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(p.out, "  %s %d. %s\n", marker, i+1, member.Path)
	}
	fmt.Fprintln(p.out, "The first file (*) is kept in every case.")

	for {
		fmt.Fprint(p.out, "Action: [d]elete, [m]ove, [h]ardlink, [s]kip? ")
		answer, err := p.readLine()
		if err != nil {
			return resolver.Decision{}, fmt.Errorf("read action: %w", err)
		}

		switch strings.ToLower(answer) {
		case "d", "delete":
			return resolver.Decision{Action: resolver.ActionDelete}, nil
		case "m", "move":
			target, err := p.readTarget()
			if err != nil {
				return resolver.Decision{}, err
			}
			return resolver.Decision{Action: resolver.ActionMove, TargetDir: target}, nil
		case "h", "hardlink":
			target, err := p.readTarget()
			if err != nil {
				return resolver.Decision{}, err
			}
			return resolver.Decision{Action: resolver.ActionHardlink, TargetDir: target}, nil
		case "s", "skip", "":
			return resolver.Decision{Skip: true}, nil
		default:
			fmt.Fprintf(p.out, "Unrecognized choice %q.\n", answer)
		}
	}
}

func (p *promptDecider) readTarget() (string, error) {
	prompt := "Target directory"
	if p.defaultTarget != "" {
		prompt += fmt.Sprintf(" [%s]", p.defaultTarget)
	}
	fmt.Fprint(p.out, prompt+": ")

	target, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("read target directory: %w", err)
	}
	if target == "" {
		target = p.defaultTarget
	}
	if target == "" {
		return "", fmt.Errorf("no target directory given")
	}
	return target, nil
}

func (p *promptDecider) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
