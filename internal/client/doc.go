// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive sync client runtime.
//
// It runs server discovery alongside the terminal picker, and once the
// operator has synchronized against a server it launches the executable
// bundle.
package client
