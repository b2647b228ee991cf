/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

import (
	"errors"
	"go/types"
	"strings"

	"github.com/ifacelink/ifacelink/pkg/naming"
	"github.com/ifacelink/ifacelink/pkg/signature"
)

func shimName(symbol string) string { return symbol + "__shim" }
func weakName(symbol string) string { return symbol + "__weak" }
func fwdName(symbol string) string  { return symbol + "__fwd" }
func guardDef(guard string) string  { return guard + "__def" }

// buildFileData turns the scanned model into the render model. Nothing is
// emitted if any part fails: an expansion that half-connects an interface
// is worse than none.
func buildFileData(model *packageModel, opts Options) (*fileData, error) {
	data := &fileData{PackageName: model.name}
	errs := make([]error, 0)

	for _, def := range model.defs {
		dd, err := buildDefData(model, def, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data.Defs = append(data.Defs, dd)
	}
	for _, impl := range model.impls {
		data.Impls = append(data.Impls, buildImplData(impl))
	}
	data.Calls = buildCallsData(model.calls)

	data.NeedLinkrt = len(data.Defs) > 0 || len(data.Impls) > 0
	data.NeedAsm = len(data.Impls) > 0 || len(data.Calls.Pulls) > 0
	for _, dd := range data.Defs {
		for _, md := range dd.Methods {
			if !md.HasDefault {
				data.NeedAsm = true
			}
		}
	}

	return data, errors.Join(errs...)
}

func buildDefData(model *packageModel, def *interfaceDef, opts Options) (defData, error) {
	ns := def.opts.Namespace
	dd := defData{
		Iface:         def.name,
		Module:        naming.ModuleName(def.name),
		GenCaller:     def.opts.GenCaller,
		AliasGuard:    naming.AliasGuard(ns, def.name),
		AliasGuardDef: guardDef(naming.AliasGuard(ns, def.name)),
	}
	if ns != "" {
		dd.NamespaceGuard = naming.NamespaceGuard(ns, def.name)
		dd.NamespaceGuardDef = guardDef(dd.NamespaceGuard)
	}

	for _, m := range def.methods {
		md := methodSymbols(ns, def.name, m)
		if m.def != nil {
			if !opts.WeakDefault {
				return defData{}, errorAt(ErrDefaultWithoutOverlay(def.name, m.name), m.def.pos)
			}
			md.HasDefault = true
			md.WeakName = weakName(md.Symbol)
			md.WeakSig = strings.TrimPrefix(types.ExprString(m.def.decl.Type), "func")
			md.Body, md.Proxies = rewriteDefaultBody(model.fset, def, m, ns)
		}
		dd.Methods = append(dd.Methods, md)
	}
	return dd, nil
}

func methodSymbols(ns, iface string, m *methodDef) defMethodData {
	symbol := naming.Symbol(ns, iface, m.name)
	return defMethodData{
		Name:       m.name,
		Symbol:     symbol,
		ImplSymbol: naming.ImplSymbol(ns, iface, m.name),
		Shim:       shimName(symbol),
		Params:     m.sig.ParamList(),
		Args:       m.sig.ArgList(),
		Results:    m.sig.ResultList(),
		HasResults: m.sig.HasResults(),
	}
}

func buildImplData(impl *implDef) implData {
	ns := impl.ref.Namespace
	id := implData{
		Iface:      impl.ref.Iface,
		Type:       impl.typeName,
		AliasGuard: naming.AliasGuard(ns, impl.ref.Iface),
	}
	if ns != "" {
		id.NamespaceGuard = naming.NamespaceGuard(ns, impl.ref.Iface)
	}
	for _, m := range impl.methods {
		symbol := naming.Symbol(ns, impl.ref.Iface, m.name)
		implSymbol := naming.ImplSymbol(ns, impl.ref.Iface, m.name)
		id.Methods = append(id.Methods, implMethodData{
			Name:       m.name,
			Symbol:     symbol,
			ImplSymbol: implSymbol,
			Fwd:        fwdName(implSymbol),
			Params:     m.sig.ParamList(),
			Args:       m.sig.ArgList(),
			Results:    m.sig.ResultList(),
			HasResults: m.sig.HasResults(),
		})
	}
	return id
}

// buildCallsData deduplicates pulls by symbol: several vars may bind the
// same method, but the linker accepts one pull per name per package.
func buildCallsData(calls []*callBinding) callsData {
	cd := callsData{}
	pulled := make(map[string]signature.Signature)
	for _, call := range calls {
		symbol := naming.Symbol(call.form.Namespace, call.form.Iface(), call.form.Method())
		if _, ok := pulled[symbol]; !ok {
			pulled[symbol] = call.sig
			cd.Pulls = append(cd.Pulls, callPullData{
				Symbol:  symbol,
				Params:  call.sig.ParamList(),
				Results: call.sig.ResultList(),
			})
		}
		cd.Binds = append(cd.Binds, callBindData{
			VarName: call.varName,
			Symbol:  symbol,
		})
	}
	return cd
}
