//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package verdict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictString(t *testing.T) {
	tests := map[Verdict]string{
		Pass:        "pass",
		Fail:        "fail",
		Error:       "error",
		Skip:        "skip",
		Verdict(99): "unknown",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, input.String())
	}
}

func TestVerdictJSONRoundTrip(t *testing.T) {
	for _, v := range []Verdict{Pass, Fail, Error, Skip} {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		var got Verdict
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, v, got)
	}
}

func TestVerdictUnmarshalUnknown(t *testing.T) {
	var v Verdict
	err := json.Unmarshal([]byte(`"maybe"`), &v)
	require.Error(t, err)
}
