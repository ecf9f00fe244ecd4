// Package llm talks to the third-party model providers used for pretext
// generation and roleplay chat.
//
// Providers form a closed set. Each one implements Client; a Plan pairs a
// client with an ordered list of candidate models and runs them through a
// FallbackPolicy, which stops at the first success.
package llm
