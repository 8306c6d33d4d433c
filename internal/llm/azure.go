package llm

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/sashabaranov/go-openai"
)

var deploymentPattern = regexp.MustCompile(`/deployments/([^/]+)/`)

// AzureProvider implements Provider using an Azure OpenAI deployment.
type AzureProvider struct {
	client     *openai.Client
	deployment string
}

// ParseAzureTargetURI extracts the endpoint, deployment name, and API version
// from a full Azure OpenAI chat-completions URL.
func ParseAzureTargetURI(target string) (endpoint, deployment, apiVersion string, err error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return "", "", "", fmt.Errorf("malformed Azure OpenAI target URI %q: %w", target, err)
	}

	if parsed.Scheme != "" && parsed.Host != "" {
		endpoint = fmt.Sprintf("%s://%s/", parsed.Scheme, parsed.Host)
	}
	if m := deploymentPattern.FindStringSubmatch(parsed.Path); m != nil {
		deployment = m[1]
	}
	apiVersion = parsed.Query().Get("api-version")

	if endpoint == "" || deployment == "" || apiVersion == "" {
		return "", "", "", fmt.Errorf("malformed Azure OpenAI target URI %q: missing endpoint, deployment, or api-version", target)
	}
	return endpoint, deployment, apiVersion, nil
}

// NewAzureProvider creates a provider from a full Azure target URI and key.
func NewAzureProvider(targetURI, apiKey string) (*AzureProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Azure OpenAI API key is required")
	}

	endpoint, deployment, apiVersion, err := ParseAzureTargetURI(targetURI)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.APIVersion = apiVersion
	cfg.AzureModelMapperFunc = func(model string) string {
		return deployment
	}

	return &AzureProvider{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
	}, nil
}

// Chat generates a completion for the given message list.
func (p *AzureProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	return chatCompletion(ctx, p.client, p.deployment, messages)
}

// Close releases resources.
func (p *AzureProvider) Close() error {
	return nil
}
