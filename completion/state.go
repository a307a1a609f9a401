package completion

import (
	"go.uber.org/zap/zapcore"
)

// State records what kinds of proposal are acceptable at the completion location. It's built by walking up the tree
// from the completion node before any proposals are made.
//
// Flags are only ever switched on, with one exception: once literals have been prohibited they can't be allowed again.
type State struct {
	mixinOnly           bool
	voidAllowed         bool
	dynamicAllowed      bool
	varAllowed          bool
	declarationIsStatic bool
	literalsAllowed     bool
	literalsProhibited  bool
	operatorsAllowed    bool
}

// MixinOnly reports whether only classes which are valid mixins should be proposed.
func (s *State) MixinOnly() bool { return s.mixinOnly }

// VoidAllowed reports whether void should be proposed where a type is expected.
func (s *State) VoidAllowed() bool { return s.voidAllowed }

// DynamicAllowed reports whether dynamic should be proposed where a type is expected.
func (s *State) DynamicAllowed() bool { return s.dynamicAllowed }

// VarAllowed reports whether var should be proposed where a type is expected.
func (s *State) VarAllowed() bool { return s.varAllowed }

// DeclarationIsStatic reports whether the completion location is inside a static declaration.
func (s *State) DeclarationIsStatic() bool { return s.declarationIsStatic }

// LiteralsAllowed reports whether null, true and false should be proposed.
func (s *State) LiteralsAllowed() bool { return s.literalsAllowed }

// OperatorsAllowed reports whether operator methods should be proposed.
func (s *State) OperatorsAllowed() bool { return s.operatorsAllowed }

// IncludeLiterals allows literals to be proposed unless they've been prohibited.
func (s *State) IncludeLiterals() {
	if !s.literalsProhibited {
		s.literalsAllowed = true
	}
}

// ProhibitLiterals stops literals from being proposed. It can't be undone.
func (s *State) ProhibitLiterals() {
	s.literalsAllowed = false
	s.literalsProhibited = true
}

// IncludeUndefinedDeclarationTypes allows void and dynamic to be proposed. It's used where the type of a declaration
// may still be being written.
func (s *State) IncludeUndefinedDeclarationTypes() {
	s.voidAllowed = true
	s.dynamicAllowed = true
}

// IncludeUndefinedTypes allows var and dynamic to be proposed. It's used for parameters, which can't have the type
// void.
func (s *State) IncludeUndefinedTypes() {
	s.varAllowed = true
	s.dynamicAllowed = true
}

// RequireMixin restricts proposed types to valid mixins.
func (s *State) RequireMixin() {
	s.mixinOnly = true
}

// SetDeclarationStatic records whether the enclosing declaration is static.
func (s *State) SetDeclarationStatic(static bool) {
	s.declarationIsStatic = static
}

// IncludeOperators allows operator methods to be proposed.
func (s *State) IncludeOperators() {
	s.operatorsAllowed = true
}

// MarshalLogObject implements [zapcore.ObjectMarshaler].
func (s *State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("mixinOnly", s.mixinOnly)
	enc.AddBool("voidAllowed", s.voidAllowed)
	enc.AddBool("dynamicAllowed", s.dynamicAllowed)
	enc.AddBool("varAllowed", s.varAllowed)
	enc.AddBool("declarationIsStatic", s.declarationIsStatic)
	enc.AddBool("literalsAllowed", s.literalsAllowed)
	enc.AddBool("literalsProhibited", s.literalsProhibited)
	enc.AddBool("operatorsAllowed", s.operatorsAllowed)
	return nil
}
