package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMRequest_Prompt(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		req  LLMRequest
		want string
	}{
		{
			name: "单个输入",
			req: LLMRequest{
				Input: []string{"docker crashed"},
				Config: BizConfig{
					PromptTemplate: "analyze: %s",
				},
			},
			want: "analyze: docker crashed",
		},
		{
			name: "多个输入",
			req: LLMRequest{
				Input: []string{"a", "b"},
				Config: BizConfig{
					PromptTemplate: "first %s second %s",
				},
			},
			want: "first a second b",
		},
		{
			name: "超长输入被截断",
			req: LLMRequest{
				Input: []string{strings.Repeat("x", 100)},
				Config: BizConfig{
					PromptTemplate: "%s",
					MaxInput:       10,
				},
			},
			want: strings.Repeat("x", 10),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.Prompt())
		})
	}
}

func TestLLMRequest_EstimatedTokens(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		text string
		want int64
	}{
		{
			name: "整除",
			text: strings.Repeat("a", 8),
			want: 2,
		},
		{
			name: "非整除向上取整",
			text: strings.Repeat("a", 9),
			want: 3,
		},
		{
			name: "单字符",
			text: "a",
			want: 1,
		},
		{
			name: "空输入",
			text: "",
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := LLMRequest{
				Input:  []string{tc.text},
				Config: BizConfig{PromptTemplate: "%s"},
			}
			assert.Equal(t, tc.want, req.EstimatedTokens())
		})
	}
}
