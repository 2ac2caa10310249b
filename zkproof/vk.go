package zkproof

import (
	"sync"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// VerifyingKey holds the fixed parameters of the aggregation circuit: the
// evaluation domain, the committed circuit columns and the G2 pairs closing
// the two pairing checks. The tables below are protocol constants produced by
// the proving-system compilation; they are copied verbatim, never re-derived.
type VerifyingKey struct {
	// evaluation domain
	Size    uint64
	SizeInv fr.Element
	Omega   fr.Element

	// permutation coset shifts
	K1, K2 fr.Element

	// transcript domain separation
	InitScalar fr.Element
	InitPoint  curve.G1Affine

	// group generator, the commitment to the constant polynomial one
	One curve.G1Affine

	// committed columns
	Lagrange    [NbInstanceLimbs + 2]curve.G1Affine
	Fixed       [NbFixed]curve.G1Affine
	Permutation [NbWires]curve.G1Affine

	// pairing check closers: inner is the (tau G2, G2) pair of the opening
	// check, outer closes the accumulator check
	InnerG2 [2]curve.G2Affine
	OuterG2 [2]curve.G2Affine
}

const aggregatorSize = 1 << 22

var (
	aggregatorOnce sync.Once
	aggregatorVK   VerifyingKey
)

// AggregatorKey returns the production verifying key, built once from the
// constant tables.
func AggregatorKey() *VerifyingKey {
	aggregatorOnce.Do(func() {
		vk := &aggregatorVK

		domain := fft.NewDomain(aggregatorSize)
		vk.Size = aggregatorSize
		vk.SizeInv = domain.CardinalityInv
		vk.Omega = domain.Generator
		vk.K1.SetUint64(2)
		vk.K2.SetUint64(3)

		vk.InitScalar = frConst(aggregatorInitScalar)
		vk.InitPoint = g1Const(aggregatorInitPoint)
		_, _, g1Gen, _ := curve.Generators()
		vk.One = g1Gen

		for i := range vk.Lagrange {
			vk.Lagrange[i] = g1Const(aggregatorLagrange[i])
		}
		for i := range vk.Fixed {
			vk.Fixed[i] = g1Const(aggregatorFixed[i])
		}
		for i := range vk.Permutation {
			vk.Permutation[i] = g1Const(aggregatorPermutation[i])
		}

		vk.InnerG2[0] = g2Const(aggregatorInnerG2)
		vk.InnerG2[1] = g2Const(aggregatorG2Gen)
		vk.OuterG2[0] = g2Const(aggregatorOuterG2)
		vk.OuterG2[1] = g2Const(aggregatorG2Gen)
	})
	return &aggregatorVK
}

func frConst(s string) fr.Element {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		panic(err)
	}
	return e
}

func g1Const(c [2]string) curve.G1Affine {
	var p curve.G1Affine
	if _, err := p.X.SetString(c[0]); err != nil {
		panic(err)
	}
	if _, err := p.Y.SetString(c[1]); err != nil {
		panic(err)
	}
	return p
}

// g2Const reads a G2 point given as x.A1, x.A0, y.A1, y.A0.
func g2Const(c [4]string) curve.G2Affine {
	var p curve.G2Affine
	if _, err := p.X.A1.SetString(c[0]); err != nil {
		panic(err)
	}
	if _, err := p.X.A0.SetString(c[1]); err != nil {
		panic(err)
	}
	if _, err := p.Y.A1.SetString(c[2]); err != nil {
		panic(err)
	}
	if _, err := p.Y.A0.SetString(c[3]); err != nil {
		panic(err)
	}
	return p
}

var aggregatorInitScalar = "0x23b93abf69fada5e7f0f4a49edd50664e06e15aec7c747cb631e998905bd9a4a"

var aggregatorInitPoint = [2]string{"0x2ea405a087ab31c39f30a03c2e155af9114b2d282d6a45a360a7d8fab86f632f", "0x052ff5dd2c4db0146ada00b03ab8c51e38417fb7a9b7cceb19e119becdb68d02"}

var aggregatorLagrange = [NbInstanceLimbs + 2][2]string{
	{"0x1c5eb8a38d52c54c71e4d84b3e6c7738570fdf54066943b111e1d9ceba1be6be", "0x173d54f4a2d4eb92060eb563df0e90f45678ac996c9310a9be2ffbbe09a03fd6"},
	{"0x1f00718da88c736f34c14e4b87f3c2bfb328cfe4ce162f7caf0f4d1174f8cc79", "0x08ed1273ad8eb326582f875ec21ac9e6d6fddc1a2e03cb873202eadccc6935d6"},
	{"0x2ec75ae9787bde775cfdd592a8264aa77fba03a7eaa3859b837489ce82719534", "0x19a01190189c954b76a46f4359ec346b7f970164756328d19f44cb612bef5eef"},
	{"0x0e241469e0c4c29b6e4a29f0285be8213d309a1a71b024a88b38dd5b056e1ce3", "0x1cbf307eb1c7b67ed9b7debf8f3794a2df34143218bfd37a5b8085b682066547"},
	{"0x246b2dc428c34f01f1e869101ce7c0515bfc6e153c82669f1f13939eabc5bdeb", "0x21eea83c16099876de43298b354abb1389554c71153490af83506d35b8ad394c"},
	{"0x1d7b2a1c6f6bae0816be8dc462a3804c096a8e7645ac46030f78f923025eb814", "0x1c2363eaabad795412791a565685dbc301de616a19d3df0247e1b578c03fca17"},
	{"0x0361efcdaf6c5dea71ccf5e1418da85bb8a351c75a13609593ffc2de0fe8680e", "0x048ed74838fbf2e152b4ca01622e1d1c228ee92ad60b8b11e1e9dbaec8ec9ce7"},
	{"0x07819120c00cab9ca314edbb9b8c99c8f23b21ea40fe7ce3c42e8050454e8eeb", "0x0db60965a37d1cb196f6b639925ac9b474fe5f7329a6cde8d9d3a97cefcd8e19"},
}

var aggregatorFixed = [NbFixed][2]string{
	{"0x0ef4d9cce4347f9ef8a7fd8849b63d3ada8ec982d77942ad10be1037193af5e8", "0x1786f8467ebe56fc0c20f273de6c1464521a1eb1954a12b1ff979a7e57993f1d"},
	{"0x125fd7e3f99dafc551f5442d4455a24ca836c5a9cfa60ff0d879ba913fe36c81", "0x14bdf686e763828196086f900236c791ddc3951cbcc5e8f6280a127068a9fec0"},
	{"0x106cee9de722d9b8cd751df53f0fe67fac62b3c7e1da613c3c29b2a525dd3339", "0x0cad4fe6e9542571b182d1b09d74ff5c580e545d3dae7210dae28f0ca9339ddf"},
	{"0x264dd5a5f44fa9b474c41d5215a134d7dae2c443f910b050a88fd279e8e1497f", "0x2757d80b049c9ae174054a2bfcd9175aa313fd824e0309801bc430343c6126b6"},
	{"0x0805b9d9f406d39c92197da5d204014141ecc9b4f2bcbb5ee25e245d9f11e70d", "0x28193974293c1e7bffd15f2f1ea75dbe5a2605001c7a7f38c26f4d5d9a0e3a02"},
	{"0x27c0deb2a99fc85b9297f7b11397837e7318e41c371211c17de0f438b22ecc9c", "0x1291aaed9812ad68a213a24bee1c1d4028616ff76aab2b53d333e0bbbf25e0d8"},
	{"0x1d694961cd518a0a1a2f3d64d9b35ae582e05cd7dba6bb5aa37229a11e2f7204", "0x1107fe9504bf4293c252600c7e7cf9f1f5ccaccbaaae1155654a539f2eaf6183"},
	{"0x160fd2989021ff2c05d49dad0cd8b79a7060c14640f1932d309eb0854ec59e41", "0x2bb0dc968250a5ebdddc3d5f1c309897d8718596a6c69f66eb6e698b6d8cb037"},
	{"0x2c55d54b82de09b91655dd0605f313e952163082b40619b3d14daedc2c1a6e7e", "0x280e3a7eee43b31b5837f4962c8c8c3ff97ea34f577d71b9cd17b9bd6907c63b"},
	{"0x2eee0dce02016f5be4e42b75ccbd246aa18cc4a3d56f8c753191d85a932fa7b0", "0x0e794fd2f5356ca1c5a49c6791f57b541cf04acdd8c2f5d2d6f811b7a75e290d"},
	{"0x2a70302558a8c5c590db5b9f3edab18686b53212172e092fc37eb25a2b99b7b1", "0x0eae599b4f3f544e437fedda82fb41748873b3af49271ab75bb9cf72498d6672"},
	{"0x00bdefec5a198aeffd28ffab99dfac96a627403608941936d81203f8ef1e73bd", "0x199eef53545a2b6d6199b2469723ee993efea8392cc5d8231d522ac1ea950720"},
	{"0x209f16111247af3b8165c96c686db9f79fb7ed59347f548941ec2b06709be268", "0x08a85e79a974bd87e1d535ea2a9bcd3e4e151e33015bebaedf198e1ed89cda69"},
	{"0x19e307e88cdf99307ac356e6ee76bb40efcbe73ad85817b99db79d6f85ae3531", "0x17e983a7953a94e73b0bf224317f2557ce473c844bf63b990163fcca7a217da3"},
	{"0x0a58c08446e3ee523bb7b46a0039a7ca112c2e9969eb9f075b7dd7bb1dc2e57c", "0x11bd49f47b8329f5727af45fa82d477356c517c45143951b857241e373902ab8"},
	{"0x1f2a0471c24176f4bccc97c40d8481e67765b898ecd387edbaf5ea70854f9c7b", "0x2013096343495eb0879c8100748b6e7d1f509b5ab918f0840e2ed8d133d35b38"},
	{"0x00d9ddc412982caacba8c43987c6c8231ef105a13a408d18015f379cca9da588", "0x0593b11f40a94f79efc8a67bf846b12381142fce5dcebf4047e41e428f01afc0"},
	{"0x1b807abc7bb64e7e72e51c7581a976fa54bb0b037cbc88de36422eff582cb304", "0x21d9102af629437a688720279bc78876c3229e7eb83008428039454496d40e4f"},
	{"0x08c81a4f68a7d33cff0688c2e410a9f43499efd4e3b0cce2813565d899180c65", "0x218886aed47b611b7636ef4b2446ba62f4c83c294090494d56a31cdb848d3da6"},
	{"0x1491c71404e4adb175c0eb14d0e6a62a0ea3df1f56b9953dd58ce1899942dbfb", "0x04500a3ae8308bc82b0879846dee1b36f9d6d9b5032e3617f7b81e77eb4ef487"},
	{"0x152161bf9066bd07673d8dd9ceffe979826e51e59232b01b6cae251caaee6a05", "0x1bb34222bc5de57e9ad762b1b56854a8747eace668fbefd666eb2110992e0e58"},
	{"0x2d31eee264aa53abbbe59bafd3790896939a5f7f935bd7f6c10979eb163f4171", "0x0ee4d89069c17cb124f188ebbd579f88f89f13ed07b397889bc19ca56dab5cde"},
	{"0x02e8ae9de31e0452fd032c5cef5661963485d34a7af577fa89c3cd1f606d2748", "0x1e5484e497002bea7978e54c51597ac02462feadab99aec2b1d4fce095d55659"},
	{"0x0569d69ba22fbf280135f64ce9e4c0ad89842c5d498813a08f22eb2b9b9206e1", "0x1f3a15805ed27ab75064e84a68616dd7578dd2da12a5245b096eae3afa6dc202"},
	{"0x1636b6d96f78695d771e826868758ad52080022e67d164f267b918ba149c10d4", "0x0d014a5ed8c85fc0c89da455fbfe3f66ce1c6f136cd1c361238ed9d18f67098b"},
	{"0x0bf08a15bdc1fb20fa3f69ed7f03de151d344d3e20a55d13590b044f319151be", "0x20be0d6599563e35b268a7b356b3a587f89ec3168e97f445276cddcfd778ae71"},
	{"0x0cd7daa588990e9689d47b8227a81f29f188308235163c8da882032758851a29", "0x2306eb9880102c764ee6b57c09a44716347638c88bd630a91ac4fee9d2d4b859"},
	{"0x2ed272008165479d258a60a3cd8e9166c331720db10b5bde50d9d3ca63e3b1d0", "0x1f5ee03a6d9254cc544619ba6b950ddc34d91ec7520a0cc637b60550bf753f51"},
	{"0x0449f8b6723bca0db0b9a6b8cb00d7237ee9fd7092f06d9242550b4584df2aeb", "0x12dc45c0779efb1abc53c096ee19bc6828c0d909ee7055a5fe0be286a25e4a8e"},
	{"0x1d70cd368c6e78062f15c8d52b890f94a77e681353c2b4bb4f166e863a7991fd", "0x027123ebbe9494c58688c0daa91f9e2526a9fd6280334a7ae84ad91e753f517f"},
	{"0x2dcf91a139e859245b38c605991ac4e81392020f1a203d13f54d26ba63627316", "0x06e1c271fb87eea1d126dcd0560449aadbd2ab6136d3be01212f1d0207dff734"},
	{"0x28da93fab8e51b7433212cd8f4e04cfd4e41569b3881965a62cf9ca88f85ea4b", "0x1094928ebf9ba953caf29e9951dc89be58262e33f5f2f197557be3398612cc75"},
	{"0x26d9f530bcb1e182384d2b2b91ad9293aba2f20b092129117d03d937d15207e4", "0x04f5bd314a795b648398f78382bb785be500045f7e97c66cc108774b6b1223e0"},
	{"0x16c2a260587af87a16e4812cf3c912d325a05a1b8a54f26a49d02c0d507e72e8", "0x2813b450dcad1c09373fe9c1f4842e711ff4ad6ca3d15d4987718cd02cc7bc49"},
	{"0x03520356dcdd05b8284488155934a4cda96fabd999209dabeb69984363abc8f1", "0x13b2048f39c5fc0152bbc14cbb501e9e2d29af18e85b4d6000aaa652abdac32a"},
	{"0x145f40a555c6aafee7fe39e57e00201e3cb8ceecb7b241837544a97e94545ad0", "0x261a819fee916ed8e403c223d32789368b5abcb79c47c15add5b83cc9a02698a"},
	{"0x00186969ee41273f4abf9a5884c2f8c46e06ecc94f57525f411f515608a48d8b", "0x248372f1987573b7586273e1d2db7c4401cef3cc4f0d2b718783630154594a64"},
	{"0x2e738cdab1663fe2c0c9570e2d47160c743707c57ca892a880172730c99012b6", "0x1c8c3fefe8e9274465bddba0380f7b4dfaabbdf338c6725287335efd315d9bba"},
	{"0x16d78e347d46badbf07040fa80effddde6c39d9a84507c35a7b9b6dd0f75832f", "0x0d6d6366c17c09e7647803dc51850c0a5bef3e23ee451eb3fa0d26795687d850"},
	{"0x00335bb820f84397d0e7c17cf73ce5c4c3415dbb1513816c0927b2caca550e23", "0x0729c9d8243cf301e3f649e9dbc622fd76fce9ee457fed0a80c1500851a157ce"},
	{"0x0fb541df51f889938f3532048b1df796457a42e3f4b3114648d76b2977ee6385", "0x02e2d57cb081e112143b49357fdea4d7d62a8977d04258024211c68b0f3acfae"},
	{"0x13f1f89b8dadcc550393169e1cdb1f7f7958454a3cba39b5ba7ac291f13b8b52", "0x078a327756a7b5a2ac3baa6a7212b71e07dc98f8c2a0fcf36b7160ec2f808a7c"},
	{"0x247b7116c93d2e26bf03844b2041904ddaef000c05ad5119c1aac78fd7e85cc9", "0x0f8177db9a1057bafc61c70297b1823d9e1594c07246d51f3a02308c833d0b43"},
	{"0x2ce3f3046604331408daec0bf6e638c2def9f0b0a09185107217dd1919ca18d0", "0x1f44adacd2c0421633bd68f5208a42c9bffa65796d88a606e6ab890e04ee0065"},
	{"0x14abbfd89b8b52dd21fbd22df934ffb3f276f85a2915ca49d8f52fcdd6689b16", "0x270b149730eaf91c5819f4f822864b887dd8dac69b8b7679a11c628c46161762"},
	{"0x11fa7ed6fa761d1c0f7b4064662d79e3d89daee68fea90edcef16567770222fc", "0x1387ca7b35dd8a4b976ecdcd64595e4c9d81d7ca7e0e5037888850ed6da92876"},
	{"0x1562daee7cca2cb868fe7c7dbf454264f15d289476f096ebc2d551c86bc32f7e", "0x08c31798d69b09ff4d9a1f005e102ea6ba25262df254d7867f9b323daa492735"},
	{"0x1a1446fec9bfc80edb3617ff0c3ff87c8eba80cf84dd1a514c078b76b0f89ad0", "0x2a43420f92bad9f6533220ceb6df43436ac24f2da616e8108a0ca6efee99677f"},
	{"0x02b20a18232ad6aaf23de216412a4a509ecfe7cc5d719d479fb2a0a3f44c0fdd", "0x00cba90f89f6cac1c6fe0879b87f4034dc81b8efe6a6a8a643383812e1c420e4"},
	{"0x1173b2d8e6b3d8e6ae3bf734b299172f7ea499c4f6f3950f8f94bd17873615ad", "0x23f4c06e487837680d9c97a0a2d0a0f70b1d80afbc6bd28e3e94905868812b29"},
	{"0x1469de729534b2984691964584b3442d99737157404a8f415ba51c77b9c2f2cd", "0x262bf9f14478b06e24e52e82da4d9868ae405f8bd2c497e4242a94637b472ba2"},
	{"0x0e6bfdfdd969d8e057f5996f56b2ef8af89eb295230bcc01a392f30c6ce89b88", "0x0725a8731061e987ae4e9cc9d5a39ce257d90e77c1e5c4f52ac308999563fc3a"},
	{"0x1641255ec0cd62f3c76a38987f85bed9775df8c0a5a8e7ee34173029ff3ece0c", "0x0e92d2364162349132dfd80e3c64d984404b7c2e2af537f65bfc77c953dcf7cc"},
	{"0x2fa1d7e30acede75e6197d964884204dcf6c80e50fa1da8444ce51b2fceb6b10", "0x06246f1589f3e69d38608929acf2ea34d4576f0ac76f7de03b9d75001ea15b45"},
	{"0x094326ce34017e3a394fdd87cad3eaa5acd27824eaaabacf734f6b4bfc57ed73", "0x21b2c596afb3499aafe12ffc9fa69b43ac9eb543e8cda86e510af2c84509f0f9"},
	{"0x1296b495ea26b5f290448feb0a4856e49d38adefe0744608595f45d8b1c93593", "0x128dc19e9fe2508ccd0fab3b800373945dcf054c2728bd7233085f9c2539bd16"},
	{"0x290871d8032030d212846f8730b39eca0cc63c6a5917ed89ac80e9eb42057090", "0x0c9f2273e9a305197815173bbe16c5ce2b4d37a285b52dc5439b4a3d61bd1dcb"},
	{"0x12c2103abe5651e2008a2473f5b5e3a6ed6f69c15ef6d649ccdeb0dbfa52d72c", "0x0a1cae99c5a10644244db8283acfb19691f73a1040a98d5d2f2e21fcd5816974"},
	{"0x124738107b1f3e07604a84af054ff490703e709338734f0afdc8e35d0d4330ec", "0x05ee16a7435b06e00275b4d0278d810689fea5d25a3327eefed74d5910d7c2d2"},
	{"0x0247826c9fb97812baaa2f0a8d3590d28d58ab7585eac8aaa0efc25509936183", "0x2231b012c22a92d0a6f27ce329ba8f1eb81c588eb9c45fcddaee347eac49be54"},
	{"0x1b91074fe929430b1c3e4c64d47642025f476c6f705e5e96124bd880be416eb9", "0x08d4574d9dd1c31397db565d203c952a8908d2a1857bada17d68578e6d780be8"},
	{"0x1a628fccdbfa1cec244c28730de008f20b5ae8eefc66d3ef9a9f42a2f2e20591", "0x28e615e09aa7ec264602365c4eee543458b457afb7f3575ed79f1a097f99e626"},
	{"0x0ed20777e25e187677a89ce138c6bac27c02cf558549508595532066f650c183", "0x1d94f182f5b908f1e0930dcaeb3d6e7219d7bddd3ac8d81c71e1027280bbea04"},
	{"0x0de5d4a0494469fa4d10215dc296f3787cf795c771ae271898ad7a0c666cf709", "0x03e8503bc3f4522bd5d914451421e856c26915b4cbbdd21174a587b43d19aa58"},
	{"0x1f61f7a60bb8544d7557101eb6c6ceeef11138a28f979def2d75e3f73bb06e51", "0x01ee31a16d9d7b1425621135da28a6ce71bb563129f46b9f7378716f13ac1dd6"},
	{"0x2d92f4053f0db808ba57f264371130e188b3cca4b73b86c351c024b272d8343f", "0x19ce0ec4a0e792a2e15ad461d099d128a9298cbd0f44a001ba33055f945078de"},
	{"0x0b6cc9e5172e0beb07cd8ca29ecf231b6683ee35edc5c5ee6c611f9c88629bb6", "0x1e3612749f89cc4e03fa04ba78e065f27bd49e557a3ef5a5a6cdac4253ffc1ef"},
	{"0x16ebde25b0d46782c3305889a6788abc0bd53f4626ea613241594e34ee6a425d", "0x0c0eae1d4306e3f7cdc4eb36414860e3ab717ecf5353add0376e64c91c857425"},
	{"0x2b0d83a9956bced66a3fdace8ded38a52a13f8028f6e69cfd6c20294f83ca457", "0x01a73b3b03871d0cd134b5dfb815db2a8ac35db173dfaae76431d4436e3b7e4b"},
	{"0x1f891592d0b8d8fc41b5a615c82504ce76ba43f0db5879d5aa23bddbab162d48", "0x121427c65a184607b29ba1ed603b54dcbda2fca2d54082f0f03fc63a79e917db"},
	{"0x053cad11fc6f89c4457143fb61db6ff29c4f7079fc68501e1dee0daad16feead", "0x1a7a81f01114db9a91dc4810820413b5b7212389bcb7fa02aa1d91ba1a0224dc"},
	{"0x0f42fa2bf2e52721e9187960f44cfc02594ae452a539fbbed3d812e8ab8d68d5", "0x0e6c427f0c8f4147d985792431373fea782274965336a3f666d592ed2b48e4b9"},
}

var aggregatorPermutation = [NbWires][2]string{
	{"0x2dd15c8a0f02c5f4a1df9cbb4a5c72cabfdece274bd666308ffa8e0469e9990d", "0x07235c66977ca3fa39e108feffdc3fdea8a584bce87ac035c62fdbdae8ffe0ec"},
	{"0x20511deacc1d2f2cb849fa7a615fd2b2b185edf8c0955ae25e982318d8603e1b", "0x03d41382447ec8732ce2d874693cdaa9cde1f69cf5c608ef24b59a5c2d5f2f95"},
	{"0x1578d7f26933ce6b382d7e8cd2895d87f6277ba6d1429d475024169bc9592321", "0x058e44600885cfe8a3f3ebd648e809a3f8653d22a258b98d024e1b53950fbe91"},
}

var aggregatorInnerG2 = [4]string{"0x27df471affe709dc84f615fd0a2725b64e2dd2c3c23b43ef634ad374ec98ed18", "0x2896d64882f539363e0e78186627df6d7463196a3f2f41ce3de9a98d2efd58ca", "0x1974261b16a65206f2a581804a901e8713580c009ab0aae609517b49c442051c", "0x087384d6e53f6f0329b2bc165ab3f7aed67179e9b96c931ec44294c2ba77fd1f"}

var aggregatorOuterG2 = [4]string{"0x1b0fe25c1597708ed835f1bad49b8c6c3af769a4b29538cd6614aaa65a0bf90c", "0x2a04f1cb3abf8d260d241a8022d7bb367de81e6c50c36ef20d770e5fa5797d39", "0x06df09cc68aa9cc4833e08b8e83861c8cc98b1b2b66c8190cc0bd108891ee038", "0x2706c6cf20b817403b8a8ea48af12ed37216ef42d0766e15a17968f9a8520df8"}

var aggregatorG2Gen = [4]string{"0x198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b7aef312c2", "0x1800deef121f1e76426a00665e5c4479674322d4f75edadd46debd5cd992f6ed", "0x090689d0585ff075ec9e99ad690c3395bc4b313370b38ef355acdadcd122975b", "0x12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce6cc0166fa7daa"}
