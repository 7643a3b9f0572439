package main

import (
	"collegereminders/internal/config"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// Digest emails are sent from AWS_EMAIL_SENDER, which SES accepts only once verified.
// Usage: aws verify | aws status
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	svc := ses.NewFromConfig(awsCfg)

	command := "status"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case "verify":
		verifySender(svc, cfg.AwsEmailSender)
	case "status":
		printSenderStatus(svc, cfg.AwsEmailSender)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q, expected verify or status\n", command)
		os.Exit(2)
	}
}

func verifySender(svc *ses.Client, sender string) {
	_, err := svc.VerifyEmailIdentity(
		context.Background(),
		&ses.VerifyEmailIdentityInput{EmailAddress: aws.String(sender)},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Verification email sent to %s\n", sender)
}

func printSenderStatus(svc *ses.Client, sender string) {
	result, err := svc.GetIdentityVerificationAttributes(
		context.Background(),
		&ses.GetIdentityVerificationAttributesInput{Identities: []string{sender}},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	attributes, ok := result.VerificationAttributes[sender]
	if !ok {
		fmt.Printf("%s: not registered, run verify first\n", sender)
		return
	}
	fmt.Printf("%s: %s\n", sender, attributes.VerificationStatus)
}
