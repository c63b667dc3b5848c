// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")

	traceID, ok := GetTraceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if traceID != "abc" {
		t.Errorf("expected 'abc', got '%s'", traceID)
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	_, ok := GetTraceIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetTraceIDFromContext_EmptyOrWrongType(t *testing.T) {
	if _, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty trace id")
	}

	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)
	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}
