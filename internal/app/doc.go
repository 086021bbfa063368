// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the parse lifecycle, decoupled from any
// specific entrypoint like a CLI.
package app
